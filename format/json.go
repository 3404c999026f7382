package format

import (
	"encoding/json"
	"io"
)

type JSONEncoder struct {
	w        io.Writer
	analysis *Analysis
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(analysis *Analysis) error {
	e.analysis = analysis
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.buildAnalysisData(), "", "  ")
}

type jsonAnalysis struct {
	Pattern      string            `json:"pattern"`
	Placeholders []jsonPlaceholder `json:"placeholders,omitempty"`
}

type jsonPlaceholder struct {
	Index        int            `json:"index"`
	Parent       int            `json:"parent,omitempty"`
	Content      string         `json:"content"`
	Name         string         `json:"name,omitempty"`
	Params       []string       `json:"params,omitempty"`
	Qualifier    *int           `json:"qualifier,omitempty"`
	Alternatives []string       `json:"alternatives,omitempty"`
	Modifiers    []jsonModifier `json:"modifiers,omitempty"`
}

type jsonModifier struct {
	Name      string   `json:"name"`
	Params    []string `json:"params,omitempty"`
	Qualifier *int     `json:"qualifier,omitempty"`
}

func (e *JSONEncoder) buildAnalysisData() jsonAnalysis {
	data := jsonAnalysis{Pattern: e.analysis.Pattern}

	for _, ph := range e.analysis.Placeholders {
		entry := jsonPlaceholder{
			Index:        ph.Index,
			Parent:       ph.Parent,
			Content:      ph.Content,
			Name:         ph.Name,
			Params:       ph.Params,
			Qualifier:    qualifierValue(ph.Qualifier),
			Alternatives: ph.Alternatives,
		}
		for _, m := range ph.Modifiers {
			entry.Modifiers = append(entry.Modifiers, jsonModifier{
				Name:      m.Name,
				Params:    m.Params,
				Qualifier: qualifierValue(m.Qualifier),
			})
		}
		data.Placeholders = append(data.Placeholders, entry)
	}

	return data
}

// qualifierValue maps the absent-qualifier sentinel to a nil pointer so it
// disappears from the JSON output while a real 0 survives.
func qualifierValue(q int) *int {
	if q < 0 {
		return nil
	}
	return &q
}
