// Package mission buckets mission-completion flags into a Sunday-first calendar week.
package mission

import (
	"bytes"
	"encoding/json"
	"time"
)

// DayKey names a day of the week
type DayKey string

const (
	Sunday    DayKey = "SUN"
	Monday    DayKey = "MON"
	Tuesday   DayKey = "TUE"
	Wednesday DayKey = "WED"
	Thursday  DayKey = "THU"
	Friday    DayKey = "FRI"
	Saturday  DayKey = "SAT"
)

// Days lists the keys in week order, indexed by time.Weekday.
var Days = [7]DayKey{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

const labelDateLayout = "2006-01-02"

// Entry is one mission result inside a day bucket
type Entry struct {
	IsComplement bool   `json:"is_complement"`
	Date         string `json:"date"`
}

// Window returns the week containing ref: midnight of its Sunday through the last
// instant of the following Saturday, both in ref's location.
func Window(ref time.Time) (start, end time.Time) {
	y, m, d := ref.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, ref.Location())
	start = day.AddDate(0, 0, -int(ref.Weekday()))
	end = start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return start, end
}

// Bucket returns the day key for ts and its "YYYY-MM-DD, DAY" label.
func Bucket(ts time.Time) (DayKey, string) {
	key := Days[ts.Weekday()]
	return key, ts.Format(labelDateLayout) + ", " + string(key)
}

// Week maps every day key to its entries in insertion order
type Week map[DayKey][]Entry

// NewWeek returns a week with all seven days present and empty
func NewWeek() Week {
	w := make(Week, len(Days))
	for _, k := range Days {
		w[k] = []Entry{}
	}
	return w
}

// Add places a completion flag into the bucket of ts
func (w Week) Add(isComplement bool, ts time.Time) {
	key, label := Bucket(ts)
	w[key] = append(w[key], Entry{IsComplement: isComplement, Date: label})
}

// Len returns the number of entries across all days
func (w Week) Len() int {
	n := 0
	for _, entries := range w {
		n += len(entries)
	}
	return n
}

// MarshalJSON emits the days in SUN..SAT order.
func (w Week) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range Days {
		if i > 0 {
			buf.WriteByte(',')
		}
		entries := w[k]
		if entries == nil {
			entries = []Entry{}
		}
		raw, err := json.Marshal(entries)
		if err != nil {
			return nil, err
		}
		buf.WriteString(`"` + string(k) + `":`)
		buf.Write(raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
