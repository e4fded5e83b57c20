package postgres

import (
	"fmt"
	"strings"
	"time"

	"gold-ledger/internal/core/domain"
)

// whereBuilder accumulates numbered SQL conditions and their arguments.
type whereBuilder struct {
	conditions []string
	args       []any
}

func (w *whereBuilder) add(format string, arg any) {
	w.args = append(w.args, arg)
	w.conditions = append(w.conditions, fmt.Sprintf(format, len(w.args)))
}

func (w *whereBuilder) addRaw(condition string) {
	w.conditions = append(w.conditions, condition)
}

func (w *whereBuilder) String() string {
	return "WHERE " + strings.Join(w.conditions, " AND ")
}

// next returns the placeholder index of the next argument.
func (w *whereBuilder) next() int {
	return len(w.args) + 1
}

// historyWhere builds the customer/status/date filter shared by history queries.
func historyWhere(customerID string, f domain.HistoryFilter, timeCol string) *whereBuilder {
	w := &whereBuilder{}
	w.add("customer_id = $%d", customerID)
	if f.Status != "" {
		w.add("status = $%d", f.Status)
	}
	if f.From != nil {
		w.add(timeCol+" >= $%d", *f.From)
	}
	if f.To != nil {
		w.add(timeCol+" <= $%d", *f.To)
	}
	return w
}

// settledWhere selects confirmed rows settled inside an optional range.
func settledWhere(customerID string, from, to *time.Time, timeCol string) *whereBuilder {
	w := &whereBuilder{}
	w.add("customer_id = $%d", customerID)
	w.addRaw("status = 'CONFIRMED'")
	if from != nil {
		w.add(timeCol+" >= $%d", *from)
	}
	if to != nil {
		w.add(timeCol+" <= $%d", *to)
	}
	return w
}
