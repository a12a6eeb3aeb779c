package member

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// optionalFields - поля, пустая строка в которых означает отсутствие значения
var optionalFields = []string{
	"dob", "age", "gender", "phone", "address",
	"baptized", "waterBaptized", "holyGhostBaptized",
	"presidingElder", "working", "occupation", "maritalStatus",
	"childrenCount", "ministry", "joinedDate", "picture", "metadata",
}

// serverFields выставляются сервером и из клиентской записи не берутся
var serverFields = []string{"createdAt", "updatedAt", "syncStatus"}

// Normalize приводит сырую запись к Member:
// пустые строки в необязательных полях становятся nil, временные метки разбираются
// без ошибок (нераспознанная или отсутствующая метка заменяется на now),
// неизвестные ключи верхнего уровня переносятся в Metadata.
func Normalize(raw RawRecord, now time.Time) (*Member, error) {
	data := make(map[string]any, len(raw))
	for k, v := range raw {
		data[k] = v
	}

	m := &Member{
		CreatedAt: parseTimestamp(data["createdAt"], now),
		UpdatedAt: parseTimestamp(data["updatedAt"], now),
	}
	for _, k := range serverFields {
		delete(data, k)
	}

	id, err := normalizeID(data["id"])
	if err != nil {
		return nil, err
	}
	delete(data, "id")
	m.ID = id

	for _, k := range optionalFields {
		if isBlank(data[k]) {
			delete(data, k)
		}
	}

	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		// ключи сравниваются строго: "ID" или "DOB" уходят в metadata
		MatchName: func(key, field string) bool { return key == field },
		Metadata:  &md,
		Result:    m,
	})
	if err != nil {
		return nil, fmt.Errorf("create decoder: %w", err)
	}
	if err := dec.Decode(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	if len(md.Unused) > 0 {
		sort.Strings(md.Unused)
		if m.Metadata == nil {
			m.Metadata = make(map[string]any, len(md.Unused))
		}
		for _, k := range md.Unused {
			if data[k] == nil {
				continue
			}
			m.Metadata[k] = data[k]
		}
	}

	return m, nil
}

// Merge накладывает переданные ключи patch на существующую запись.
// Пустая строка в необязательном поле очищает его.
func Merge(existing *Member, patch RawRecord, now time.Time) (*Member, error) {
	raw, err := existing.ToRaw()
	if err != nil {
		return nil, err
	}
	for k, v := range patch {
		if k == "id" || k == "createdAt" || k == "updatedAt" || k == "syncStatus" {
			continue
		}
		raw[k] = v
	}

	m, err := Normalize(raw, now)
	if err != nil {
		return nil, err
	}
	m.ID = existing.ID
	m.CreatedAt = existing.CreatedAt
	m.SyncStatus = existing.SyncStatus
	m.UpdatedAt = now

	return m, nil
}

// Validate проверяет обязательные поля
func (m *Member) Validate() error {
	if strings.TrimSpace(m.FirstName) == "" {
		return fmt.Errorf("%w: firstName is required", ErrInvalidData)
	}
	if strings.TrimSpace(m.LastName) == "" {
		return fmt.Errorf("%w: lastName is required", ErrInvalidData)
	}
	return nil
}

// ToRaw возвращает запись в клиентском JSON-представлении
func (m *Member) ToRaw() (RawRecord, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal member: %w", err)
	}
	raw := RawRecord{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal member: %w", err)
	}
	return raw, nil
}

// ParseID проверяет, что идентификатор - UUID, и возвращает его каноническую форму
func ParseID(id string) (string, error) {
	u, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return u.String(), nil
}

func normalizeID(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: must be a string", ErrInvalidID)
	}
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	return ParseID(s)
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

// secondsCutoff - числа меньше этого значения считаются секундами unix, иначе миллисекундами
const secondsCutoff = 1e11

var (
	minTimestamp = time.Date(1, 1, 1, 0, 0, 0, 1, time.UTC)
	maxTimestamp = time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC)
)

// parseTimestamp: строки в любом формате, понятном cast, числа - секунды или миллисекунды unix.
// Метки вне 1-9999 годов считаются нераспознанными.
func parseTimestamp(v any, now time.Time) time.Time {
	t := decodeTimestamp(v)
	if t.IsZero() || t.Before(minTimestamp) || t.After(maxTimestamp) {
		return now
	}
	return t.UTC()
}

func decodeTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if strings.TrimSpace(t) == "" {
			return time.Time{}
		}
		parsed, err := cast.ToTimeInDefaultLocationE(strings.TrimSpace(t), time.UTC)
		if err != nil {
			return time.Time{}
		}
		return parsed
	case float64, float32, int, int64, json.Number:
		n, err := cast.ToInt64E(t)
		if err != nil || n <= 0 {
			return time.Time{}
		}
		if n < secondsCutoff {
			return time.Unix(n, 0)
		}
		return time.UnixMilli(n)
	default:
		return time.Time{}
	}
}
