package design

type Status string

const (
	StatusDraft   Status = "draft"
	StatusOrdered Status = "ordered"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusOrdered:
		return true
	default:
		return false
	}
}
