package domain

import "fmt"

// ThreatLevel ranks how dangerous a scanned document is. Levels are totally
// ordered; classification always takes the maximum across matched indicators.
type ThreatLevel int

const (
	LevelSafe ThreatLevel = iota
	LevelLow
	LevelMedium
	LevelHigh
	LevelCritical
)

var levelNames = map[ThreatLevel]string{
	LevelSafe:     "safe",
	LevelLow:      "low",
	LevelMedium:   "medium",
	LevelHigh:     "high",
	LevelCritical: "critical",
}

func (l ThreatLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseThreatLevel converts a lowercase level name back into a ThreatLevel.
func ParseThreatLevel(s string) (ThreatLevel, error) {
	for level, name := range levelNames {
		if name == s {
			return level, nil
		}
	}
	return LevelSafe, fmt.Errorf("unknown threat level %q", s)
}

func (l ThreatLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

func (l *ThreatLevel) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseThreatLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func (l ThreatLevel) MarshalYAML() (interface{}, error) {
	return l.String(), nil
}

func (l *ThreatLevel) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseThreatLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ThreatRule describes one structural keyword the external analysis tool
// reports and how severe its presence is.
type ThreatRule struct {
	Level       ThreatLevel `yaml:"level"       json:"level"`
	Description string      `yaml:"description" json:"description"`
}

// ThreatTable maps structural keywords to their severity rules. It is built
// once at startup and never mutated afterwards, so all scan workers read it
// without synchronization.
type ThreatTable map[string]ThreatRule

// DefaultThreatTable returns the built-in keyword severity rules.
func DefaultThreatTable() ThreatTable {
	return ThreatTable{
		"/JS":           {Level: LevelCritical, Description: "JavaScript code execution"},
		"/JavaScript":   {Level: LevelCritical, Description: "JavaScript embedded"},
		"/AA":           {Level: LevelHigh, Description: "Auto-action triggers"},
		"/OpenAction":   {Level: LevelHigh, Description: "Automatic execution on open"},
		"/Launch":       {Level: LevelHigh, Description: "External program execution"},
		"/EmbeddedFile": {Level: LevelMedium, Description: "Embedded files present"},
		"/RichMedia":    {Level: LevelMedium, Description: "Rich media content"},
		"/XFA":          {Level: LevelMedium, Description: "XML Forms Architecture"},
		"/Encrypt":      {Level: LevelLow, Description: "Encrypted content"},
		"/Names":        {Level: LevelLow, Description: "Named destinations"},
		"/AcroForm":     {Level: LevelLow, Description: "Interactive forms"},
	}
}

// Merge returns a copy of the table with the given overrides applied on top.
// The receiver is left untouched.
func (t ThreatTable) Merge(overrides map[string]ThreatRule) ThreatTable {
	merged := make(ThreatTable, len(t)+len(overrides))
	for k, v := range t {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
