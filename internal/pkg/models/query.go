package models

// QueryTopic selects which facts back an answer
type QueryTopic string

const (
	TopicUpcoming QueryTopic = "upcoming"
	TopicHistory  QueryTopic = "history"
	TopicRisk     QueryTopic = "risk"
	TopicBalance  QueryTopic = "balance"
)

// QueryAnswer is the reply to a free-form question
type QueryAnswer struct {
	Topic  QueryTopic `json:"topic"`
	Answer string     `json:"answer"`
	Facts  []string   `json:"facts"`
}

// AnalysisResult summarizes the most recent executed payments
type AnalysisResult struct {
	Decision     Decision `json:"decision"`
	Summary      string   `json:"summary"`
	Transactions []string `json:"transactions"`
}
