package domain

import "time"

// Memory types written by this service.
const (
	MemoryTypeInteraction = "interaction"
)

// Memory is a single record in the agent memory collection. The document id is
// assigned by Firestore and is not stored inside the document itself.
type Memory struct {
	ID             string                 `json:"id" firestore:"-"`
	Type           string                 `json:"type" firestore:"type"`
	Content        string                 `json:"content" firestore:"content"`
	Tags           []string               `json:"tags" firestore:"tags"`
	Metadata       map[string]interface{} `json:"metadata" firestore:"metadata"`
	Timestamp      time.Time              `json:"timestamp" firestore:"timestamp"`
	RelevanceScore float64                `json:"relevanceScore" firestore:"relevanceScore"`
	AccessCount    int64                  `json:"accessCount" firestore:"accessCount"`
}
