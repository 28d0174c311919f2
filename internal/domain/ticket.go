package domain

import "time"

// Category is both the classification of a ticket and the single
// domain an agent is scoped to.
type Category string

const (
	CategoryNetwork     Category = "NETWORK"
	CategoryHardware    Category = "HARDWARE"
	CategorySoftware    Category = "SOFTWARE"
	CategoryElectricity Category = "ELECTRICITY"
)

// IsValid reports whether the category is a known value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryNetwork, CategoryHardware, CategorySoftware, CategoryElectricity:
		return true
	}
	return false
}

// Priority enumerates ticket urgency.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// IsValid reports whether the priority is a known value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Status enumerates ticket lifecycle states. Any status may be set at
// any time; there is no forbidden-transition table.
type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
)

// IsValid reports whether the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// Comment is one entry in a ticket's append-only thread. Comments are
// never edited or deleted.
type Comment struct {
	ID         string    `json:"id"`
	Author     string    `json:"author"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
	IsInternal bool      `json:"isInternal"`
}

// Ticket is the unit of work tracked by the helpdesk. CreatedBy and
// AssignedTo carry display names, not foreign keys. Category is
// immutable after creation.
type Ticket struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	CreatedBy   string    `json:"createdBy"`
	AssignedTo  *string   `json:"assignedTo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Comments    []Comment `json:"comments"`
}
