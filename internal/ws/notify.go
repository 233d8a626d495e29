package ws

import (
	"encoding/json"
	"time"

	"talent-rank/internal/domain/workflow"

	"github.com/google/uuid"
)

type StatusChangedEvent struct {
	Type        string `json:"type"`
	CandidateID string `json:"candidate_id"`
	JobID       string `json:"job_id"`
	From        string `json:"from"`
	To          string `json:"to"`
	Timestamp   string `json:"timestamp"`
}

type CandidateQualifiedEvent struct {
	Type        string `json:"type"`
	CandidateID string `json:"candidate_id"`
	JobID       string `json:"job_id"`
	Total       int    `json:"total"`
	Timestamp   string `json:"timestamp"`
}

// Notifier bridges the workflow usecase to connected reviewers.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) StatusChanged(candidateID, jobID uuid.UUID, from, to workflow.Status) {
	if n == nil || n.hub == nil {
		return
	}
	evt := StatusChangedEvent{
		Type:        "status_changed",
		CandidateID: candidateID.String(),
		JobID:       jobID.String(),
		From:        string(from),
		To:          string(to),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}

func (n *Notifier) CandidateQualified(candidateID, jobID uuid.UUID, total int) {
	if n == nil || n.hub == nil {
		return
	}
	evt := CandidateQualifiedEvent{
		Type:        "candidate_qualified",
		CandidateID: candidateID.String(),
		JobID:       jobID.String(),
		Total:       total,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
