package entity

import "time"

// TimestampLayout formato canónico de timestamps persistidos y exportados.
// El orden lexicográfico coincide con el cronológico, requisito de las
// consultas por rango de fechas del ledger y los reportes.
const TimestampLayout = "2006-01-02 15:04:05"

// NormalizeTimestamp lleva un instante a la forma canónica: UTC truncado al segundo.
// Todo productor que persista un timestamp debe pasar por aquí.
func NormalizeTimestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

// FormatTimestamp serializa un instante en la forma canónica ordenable.
func FormatTimestamp(t time.Time) string {
	return NormalizeTimestamp(t).Format(TimestampLayout)
}

// ParseTimestamp interpreta un timestamp en la forma canónica (UTC).
func ParseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, s, time.UTC)
}
