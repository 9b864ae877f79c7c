package dto

// PublishChatCompletedMessage is the payload published after every finished
// pipeline run, consumed by the mood trend worker.
type PublishChatCompletedMessage struct {
	RunId     string `json:"run_id"`
	UserId    string `json:"user_id"`
	Emotion   string `json:"emotion"`
	Branch    string `json:"branch"`
	LatencyMs int64  `json:"latency_ms"`
}
