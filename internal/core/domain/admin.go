package domain

// MockUser is an admin-panel user row. It is unrelated to the credential
// store and lives only in process memory.
type MockUser struct {
	ID                   int    `json:"id"`
	Username             string `json:"username"`
	Email                string `json:"email"`
	Mobile               string `json:"mobile"`
	FullName             string `json:"full_name"`
	CCTVLink             string `json:"cctv_link,omitempty"`
	IsAdmin              bool   `json:"is_admin"`
	IsActive             bool   `json:"is_active"`
	IsCCTVVisible        bool   `json:"is_cctv_visible"`
	IsCCTVStorageVisible bool   `json:"is_cctv_storage_visible"`
}

// NextUserID returns max(existing ids)+1, or 1 for an empty list. Ids are
// only unique within one process lifetime.
func NextUserID(users []MockUser) int {
	next := 1
	for _, u := range users {
		if u.ID >= next {
			next = u.ID + 1
		}
	}
	return next
}

// DraftUser is the blank row offered by "Add User".
func DraftUser(users []MockUser) MockUser {
	return MockUser{ID: NextUserID(users), IsActive: true}
}

// MonthlyTotal is one entry in the ordered donation totals.
type MonthlyTotal struct {
	Month string `json:"month"`
	Total int64  `json:"total"`
}

// DashboardSummary is recomputed from the monthly totals on every request.
type DashboardSummary struct {
	ThisMonth     int64          `json:"this_month"`
	PreviousMonth int64          `json:"previous_month"`
	YearToDate    int64          `json:"year_to_date"`
	ActiveUsers   int            `json:"active_users"`
	Admins        int            `json:"admins"`
	Months        []MonthlyTotal `json:"months"`
}

// Summarize reduces the monthly totals: the last entry is this month, the
// one before it the previous month, and the sum is year-to-date.
func Summarize(months []MonthlyTotal, users []MockUser) DashboardSummary {
	s := DashboardSummary{Months: append([]MonthlyTotal(nil), months...)}
	if n := len(months); n > 0 {
		s.ThisMonth = months[n-1].Total
		if n > 1 {
			s.PreviousMonth = months[n-2].Total
		}
	}
	for _, m := range months {
		s.YearToDate += m.Total
	}
	for _, u := range users {
		if u.IsActive {
			s.ActiveUsers++
		}
		if u.IsAdmin {
			s.Admins++
		}
	}
	return s
}

// MockTransaction is a read-only ledger row.
type MockTransaction struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Particular string `json:"particular"`
	Amount     int64  `json:"amount"`
	Method     string `json:"method"`
	Status     string `json:"status"`
}

// FilterTransactions keeps rows whose date lies in r, inclusive. Dates are
// ISO calendar strings and compare lexicographically. A range missing either
// bound returns every row.
func FilterTransactions(txs []MockTransaction, r DateRange) []MockTransaction {
	out := make([]MockTransaction, 0, len(txs))
	for _, t := range txs {
		if r.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}
