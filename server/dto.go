package server

import (
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/dijkstep/session"
	"github.com/katalvlaran/dijkstep/steps"
)

// StepDTO is the wire form of a steps.Step. Unreached distances and absent
// node references are null.
type StepDTO struct {
	Kind        string           `json:"kind"`
	Current     *int             `json:"current"`
	Neighbor    *int             `json:"neighbor"`
	Visited     []int            `json:"visited"`
	Frontier    []int            `json:"frontier"`
	Distances   map[int]*float64 `json:"distances"`
	Previous    map[int]int      `json:"previous"`
	Description string           `json:"description"`
}

// SessionDTO describes a session without its graph.
type SessionDTO struct {
	ID        uuid.UUID `json:"id"`
	Nodes     int       `json:"nodes"`
	Directed  bool      `json:"directed"`
	Start     int       `json:"start"`
	Cursor    int       `json:"cursor"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionResponse pairs a session with the step under its cursor.
type SessionResponse struct {
	Session SessionDTO `json:"session"`
	Step    StepDTO    `json:"step"`
}

type listResponse struct {
	Sessions []uuid.UUID `json:"sessions"`
}

type stepsResponse struct {
	Steps []StepDTO `json:"steps"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func nodeRef(id int) *int {
	if id == steps.NoNode {
		return nil
	}
	return &id
}

func fromStep(s steps.Step) StepDTO {
	dto := StepDTO{
		Kind:        s.Kind.String(),
		Current:     nodeRef(s.Current),
		Neighbor:    nodeRef(s.Neighbor),
		Visited:     append([]int{}, s.Visited...),
		Frontier:    append([]int{}, s.Frontier...),
		Distances:   make(map[int]*float64, len(s.Distances)),
		Previous:    make(map[int]int, len(s.Previous)),
		Description: s.Description,
	}
	for id, d := range s.Distances {
		d := d
		if steps.Reached(d) {
			dto.Distances[id] = &d
		} else {
			dto.Distances[id] = nil
		}
	}
	for id, p := range s.Previous {
		dto.Previous[id] = p
	}
	return dto
}

func fromRecord(rec session.Record) SessionDTO {
	return SessionDTO{
		ID:        rec.ID,
		Nodes:     rec.Definition.Nodes,
		Directed:  rec.Definition.Directed,
		Start:     rec.Start,
		Cursor:    rec.Cursor,
		CreatedAt: rec.CreatedAt,
	}
}
