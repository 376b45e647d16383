package picker

// CategoryOrder controls how categories are grouped at load time. The zero
// value sorts categories alphabetically.
type CategoryOrder struct {
	// Priority lists category labels that come first, in the given order.
	// Categories not listed follow alphabetically.
	Priority []string
}

// Alphabetical returns the default category order.
func Alphabetical() CategoryOrder {
	return CategoryOrder{}
}

// PriorityOrder returns an order placing the given labels first.
func PriorityOrder(labels ...string) CategoryOrder {
	return CategoryOrder{Priority: append([]string(nil), labels...)}
}

func (o CategoryOrder) rank(category string) int {
	for i, label := range o.Priority {
		if label == category {
			return i
		}
	}
	return len(o.Priority)
}

// Less reports whether category a sorts before category b.
func (o CategoryOrder) Less(a, b string) bool {
	if len(o.Priority) > 0 {
		ra, rb := o.rank(a), o.rank(b)
		if ra != rb {
			return ra < rb
		}
	}
	return a < b
}

func (o CategoryOrder) less(a, b *Candidate) bool {
	if a.category != b.category {
		return o.Less(a.category, b.category)
	}
	if a.name != b.name {
		return a.name < b.name
	}
	return a.id < b.id
}
