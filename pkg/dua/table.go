package dua

import "noor-counseling-be/pkg/emotion"

// curatedTable holds vetted duas served without touching the provider.
// Categories missing here fall through to the generated tier.
var curatedTable = map[emotion.Category][]Artifact{
	emotion.Sad: {
		{
			Arabic:      "اللّهُمَّ إِنِّي أَعُوذُ بِكَ مِنَ الهَمِّ وَالحَزَنِ",
			Translation: "O Allah, I seek refuge in You from anxiety and grief.",
		},
		{
			Arabic:      "اللّهُمَّ رَحْمَتَكَ أَرْجُو فَلَا تَكِلْنِي إِلَى نَفْسِي طَرْفَةَ عَيْنٍ",
			Translation: "O Allah, it is Your mercy that I hope for, so do not leave me to myself even for the blink of an eye.",
		},
	},
	emotion.Angry: {
		{
			Arabic:      "أَعُوذُ بِاللّهِ مِنَ الشَّيْطَانِ الرَّجِيمِ",
			Translation: "I seek refuge in Allah from the accursed devil.",
		},
	},
	emotion.Anxious: {
		{
			Arabic:      "حَسْبُنَا اللّهُ وَنِعْمَ الوَكِيلُ",
			Translation: "Allah is sufficient for us, and He is the best disposer of affairs.",
		},
	},
	emotion.Tired: {
		{
			Arabic:      "اللّهُمَّ لَا سَهْلَ إِلَّا مَا جَعَلْتَهُ سَهْلًا",
			Translation: "O Allah, nothing is easy except what You make easy.",
		},
	},
	emotion.Lonely: {
		{
			Arabic:      "رَبِّ لَا تَذَرْنِي فَرْدًا وَأَنْتَ خَيْرُ الوَارِثِينَ",
			Translation: "My Lord, do not leave me alone, and You are the best of inheritors.",
		},
	},
	emotion.Guilty: {
		{
			Arabic:      "رَبِّ اغْفِرْ لِي وَتُبْ عَلَيَّ إِنَّكَ أَنْتَ التَّوَّابُ الرَّحِيمُ",
			Translation: "My Lord, forgive me and accept my repentance; You are the Accepter of repentance, the Merciful.",
		},
	},
	emotion.Hopeless: {
		{
			Arabic:      "وَلَا تَيْأَسُوا مِنْ رَوْحِ اللَّهِ",
			Translation: "And do not despair of the mercy of Allah.",
		},
	},
	// "empty" is intentionally uncurated; it is served by the generated tier.
}

// genericFallback is the artifact of last resort when both the curated table
// and the provider come up short.
var genericFallback = Artifact{
	Arabic:      "حَسْبِيَ اللّهُ لَا إِلَهَ إِلَّا هُوَ عَلَيْهِ تَوَكَّلْتُ",
	Translation: "Allah is sufficient for me; there is no god but He. Upon Him I rely.",
}
