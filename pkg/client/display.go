package client

import "github.com/deskflow/helpdesk/internal/domain"

// Display normalization lives only at the render boundary. The wire
// form (upper snake) stays canonical everywhere: session state, policy
// comparisons and request payloads. The maps are reversible so a
// displayed value can be folded back to its wire form, and applying
// the mapping to an already-displayed value returns it unchanged.

var statusDisplay = map[domain.Status]string{
	domain.StatusOpen:       "Open",
	domain.StatusInProgress: "In Progress",
	domain.StatusResolved:   "Resolved",
}

var categoryDisplay = map[domain.Category]string{
	domain.CategoryNetwork:     "Network",
	domain.CategoryHardware:    "Hardware",
	domain.CategorySoftware:    "Software",
	domain.CategoryElectricity: "Electricity",
}

var priorityDisplay = map[domain.Priority]string{
	domain.PriorityLow:    "Low",
	domain.PriorityMedium: "Medium",
	domain.PriorityHigh:   "High",
}

var roleDisplay = map[domain.Role]string{
	domain.RoleUser:  "User",
	domain.RoleAgent: "Agent",
}

func invert[K ~string](m map[K]string) map[string]K {
	out := make(map[string]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

var (
	statusWire   = invert(statusDisplay)
	categoryWire = invert(categoryDisplay)
	priorityWire = invert(priorityDisplay)
	roleWire     = invert(roleDisplay)
)

// DisplayStatus renders a status for humans. Idempotent: a value that
// is already in display form comes back unchanged.
func DisplayStatus(s domain.Status) string {
	if label, ok := statusDisplay[s]; ok {
		return label
	}
	return string(s)
}

// DisplayCategory renders a category for humans.
func DisplayCategory(c domain.Category) string {
	if label, ok := categoryDisplay[c]; ok {
		return label
	}
	return string(c)
}

// DisplayPriority renders a priority for humans.
func DisplayPriority(p domain.Priority) string {
	if label, ok := priorityDisplay[p]; ok {
		return label
	}
	return string(p)
}

// DisplayRole renders a role for humans.
func DisplayRole(r domain.Role) string {
	if label, ok := roleDisplay[r]; ok {
		return label
	}
	return string(r)
}

// WireStatus folds a displayed status back to its canonical wire form.
func WireStatus(label string) (domain.Status, bool) {
	if s, ok := statusWire[label]; ok {
		return s, true
	}
	s := domain.Status(label)
	return s, s.IsValid()
}

// WireCategory folds a displayed category back to its wire form.
func WireCategory(label string) (domain.Category, bool) {
	if c, ok := categoryWire[label]; ok {
		return c, true
	}
	c := domain.Category(label)
	return c, c.IsValid()
}

// WirePriority folds a displayed priority back to its wire form.
func WirePriority(label string) (domain.Priority, bool) {
	if p, ok := priorityWire[label]; ok {
		return p, true
	}
	p := domain.Priority(label)
	return p, p.IsValid()
}

// WireRole folds a displayed role back to its wire form.
func WireRole(label string) (domain.Role, bool) {
	if r, ok := roleWire[label]; ok {
		return r, true
	}
	r := domain.Role(label)
	return r, r.IsValid()
}
