package dto

import "time"

type ExplainInput struct {
	Topic string
}

type ExplainOutput struct {
	Topic       string
	Body        string
	NotePath    string
	GeneratedAt time.Time
}
