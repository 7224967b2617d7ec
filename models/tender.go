package models

// Tender is a single search hit returned by the remote search function.
//
// Members of the remote record that are not listed here are dropped during
// decoding.
type Tender struct {
	// ID is the identifier of the tender in the remote index.
	ID string `json:"id"`

	// Title is the short tender title.
	Title string `json:"title"`

	// Description is the full tender description text.
	Description string `json:"description"`
}

// TenderRecord is the wire form of a Tender as sent by the remote function.
//
// Every member must be present and hold a string. Pointers keep a missing or
// null member apart from an empty string, which is a valid value.
type TenderRecord struct {
	ID          *string `json:"id" validate:"required"`
	Title       *string `json:"title" validate:"required"`
	Description *string `json:"description" validate:"required"`
}

// Tender converts the record into a Tender. Absent members become empty
// strings, so callers validate the record first.
func (r TenderRecord) Tender() Tender {
	return Tender{
		ID:          deref(r.ID),
		Title:       deref(r.Title),
		Description: deref(r.Description),
	}
}

// TendersFromRecords converts records into tenders, keeping their order.
func TendersFromRecords(records []TenderRecord) []Tender {
	tenders := make([]Tender, 0, len(records))
	for _, r := range records {
		tenders = append(tenders, r.Tender())
	}
	return tenders
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
