package hierarchy

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// DivText is the text content of one numbered DIV element from the full-title
// XML. The versioner full-text format nests DIV1 (title) through DIV9
// (appendix) elements, each identified by its N and TYPE attributes.
type DivText struct {
	Tag        string // DIV1..DIV9
	Depth      int    // numeric suffix of the tag
	Identifier string // N attribute
	Type       string // TYPE attribute mapped to structure type names
	Heading    string // first HEAD child
	Authority  string // first SECAUTH child
	Citation   string // first CITA child
	Body       string // remaining text, excluding nested numbered DIVs
}

var divTagPattern = regexp.MustCompile(`^DIV(\d+)$`)

// Special child elements extracted separately from the body
const (
	elemHead    = "HEAD"
	elemSecAuth = "SECAUTH"
	elemCita    = "CITA"
)

type divFrame struct {
	div  *DivText
	body strings.Builder

	// capture target while inside a HEAD/SECAUTH/CITA subtree
	special      *strings.Builder
	specialName  string
	specialDepth int

	headDone bool
	authDone bool
	citaDone bool
}

// ExtractDivTexts parses full-title XML and returns the text of every
// numbered DIV element in document order. Text inside a nested numbered DIV
// belongs to that DIV only, so a chapter's body does not repeat the text of
// its parts and sections.
func ExtractDivTexts(data []byte) ([]*DivText, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.Strict = false
	decoder.Entity = xml.HTMLEntity

	var (
		results []*DivText
		stack   []*divFrame
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse full-text XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := strings.ToUpper(t.Name.Local)
			if m := divTagPattern.FindStringSubmatch(name); m != nil {
				depth, _ := strconv.Atoi(m[1])
				frame := &divFrame{div: &DivText{Tag: name, Depth: depth}}
				for _, attr := range t.Attr {
					switch strings.ToUpper(attr.Name.Local) {
					case "N":
						frame.div.Identifier = attr.Value
					case "TYPE":
						frame.div.Type = normalizeDivType(attr.Value)
					}
				}
				// Pre-order: the element is reported before its body is known
				results = append(results, frame.div)
				stack = append(stack, frame)
				continue
			}

			if top := currentFrame(stack); top != nil && top.special == nil {
				switch {
				case name == elemHead && !top.headDone:
					top.startSpecial(name)
				case name == elemSecAuth && !top.authDone:
					top.startSpecial(name)
				case name == elemCita && !top.citaDone:
					top.startSpecial(name)
				}
			} else if top != nil && top.special != nil {
				top.specialDepth++
			}

		case xml.EndElement:
			name := strings.ToUpper(t.Name.Local)
			top := currentFrame(stack)
			if top == nil {
				continue
			}

			if top.special != nil {
				if top.specialDepth > 0 {
					top.specialDepth--
					continue
				}
				if name == top.specialName {
					top.endSpecial()
					continue
				}
			}

			if divTagPattern.MatchString(name) {
				top.finalize()
				stack = stack[:len(stack)-1]
			}

		case xml.CharData:
			if top := currentFrame(stack); top != nil {
				if top.special != nil {
					top.special.Write(t)
				} else {
					top.body.Write(t)
					top.body.WriteByte(' ')
				}
			}
		}
	}

	// Close any frames left open by truncated input
	for i := len(stack) - 1; i >= 0; i-- {
		stack[i].finalize()
	}

	return results, nil
}

func currentFrame(stack []*divFrame) *divFrame {
	if len(stack) == 0 {
		return nil
	}
	return stack[len(stack)-1]
}

func (f *divFrame) startSpecial(name string) {
	f.special = &strings.Builder{}
	f.specialName = name
	f.specialDepth = 0
}

func (f *divFrame) endSpecial() {
	text := normalizeSpace(f.special.String())
	switch f.specialName {
	case elemHead:
		f.div.Heading = text
		f.headDone = true
	case elemSecAuth:
		f.div.Authority = text
		f.authDone = true
	case elemCita:
		f.div.Citation = text
		f.citaDone = true
	}
	f.special = nil
	f.specialName = ""
}

func (f *divFrame) finalize() {
	if f.special != nil {
		f.endSpecial()
	}
	f.div.Body = normalizeSpace(f.body.String())
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// normalizeDivType maps full-text XML TYPE attribute values onto the
// hierarchy type names used by the structure endpoint
func normalizeDivType(t string) string {
	switch strings.ToUpper(t) {
	case "SUBCHAP":
		return TypeSubchapter
	case "SUBJGRP":
		return TypeSubjectGroup
	default:
		return strings.ToLower(t)
	}
}

// TextIndex looks up div texts by hierarchy type and identifier. Identifiers
// that repeat within a type (subpart letters recur across parts) are
// ambiguous and never matched.
type TextIndex struct {
	byKey     map[string]*DivText
	ambiguous map[string]bool
}

// NewTextIndex builds an index over the given div texts
func NewTextIndex(divs []*DivText) *TextIndex {
	idx := &TextIndex{
		byKey:     make(map[string]*DivText, len(divs)),
		ambiguous: make(map[string]bool),
	}
	for _, d := range divs {
		if d.Identifier == "" || d.Type == "" {
			continue
		}
		key := d.Type + "\x00" + d.Identifier
		if _, exists := idx.byKey[key]; exists {
			idx.ambiguous[key] = true
			continue
		}
		idx.byKey[key] = d
	}
	return idx
}

// Lookup returns the div text for a type/identifier pair, or false when the
// pair is unknown or ambiguous
func (idx *TextIndex) Lookup(hierarchyType, identifier string) (*DivText, bool) {
	key := hierarchyType + "\x00" + identifier
	if idx.ambiguous[key] {
		return nil, false
	}
	d, ok := idx.byKey[key]
	return d, ok
}

// ApplyText fills RegText on records whose type and identifier match an
// unambiguous div text with a non-empty body. It returns the number of
// records that received text.
func ApplyText(records []Record, idx *TextIndex) int {
	applied := 0
	for i := range records {
		id := records[i].Identifier()
		if id == "" {
			continue
		}
		d, ok := idx.Lookup(records[i].Type, id)
		if !ok || d.Body == "" {
			continue
		}
		records[i].RegText = d.Body
		applied++
	}
	return applied
}
