// Package hierarchy flattens the nested eCFR title structure into one record
// per node, carrying inherited ancestor identifiers and labels, and extracts
// per-node regulation text from the full-title XML.
package hierarchy

import (
	"github.com/ttbdata/ecfr-sync/internal/ecfr"
)

// Hierarchy type names as used by the structure endpoint
const (
	TypeTitle        = "title"
	TypeChapter      = "chapter"
	TypeSubchapter   = "subchapter"
	TypePart         = "part"
	TypeSubpart      = "subpart"
	TypeSection      = "section"
	TypeAppendix     = "appendix"
	TypeSubjectGroup = "subject_group"
)

// Record is one flattened hierarchy node. Ancestor identifier/label pairs are
// inherited down the tree, so a section record also carries its chapter, part
// and subpart context.
type Record struct {
	CFRRef   string
	Type     string
	Level    int
	OrderID  int
	IsLeaf   bool
	Reserved bool

	TitleID string

	ChapterID         string
	ChapterLabel      string
	SubchapterID      string
	SubchapterLabel   string
	PartID            string
	PartLabel         string
	SubpartID         string
	SubpartLabel      string
	SectionID         string
	SectionLabel      string
	AppendixID        string
	AppendixLabel     string
	SubjectGroupID    string
	SubjectGroupLabel string

	// RegText is filled in from the full-title XML when a matching
	// text node exists
	RegText string
}

// Flatten walks the structure tree depth-first and returns one record per
// node, in document order. Order ids start at 1 at the root.
func Flatten(root *ecfr.StructureNode) []Record {
	if root == nil {
		return nil
	}
	var records []Record
	orderID := 1
	walk(root, Record{}, 0, &orderID, &records)
	return records
}

func walk(node *ecfr.StructureNode, inherited Record, level int, orderID *int, records *[]Record) {
	rec := inherited
	rec.Type = node.Type
	rec.Level = level
	rec.OrderID = *orderID
	*orderID++
	rec.IsLeaf = len(node.Children) == 0
	rec.Reserved = node.Reserved

	rec.setIdentity(node.Type, node.Identifier, node.Label)
	rec.CFRRef = BuildRef(rec)

	*records = append(*records, rec)

	for _, child := range node.Children {
		walk(child, rec, level+1, orderID, records)
	}
}

// setIdentity records the node's own identifier and label in the field pair
// for its hierarchy type. Unknown types carry no identity of their own and
// inherit only ancestor context.
func (r *Record) setIdentity(hierarchyType, identifier, label string) {
	switch hierarchyType {
	case TypeTitle:
		r.TitleID = identifier
	case TypeChapter:
		r.ChapterID = identifier
		r.ChapterLabel = label
	case TypeSubchapter:
		r.SubchapterID = identifier
		r.SubchapterLabel = label
	case TypePart:
		r.PartID = identifier
		r.PartLabel = label
	case TypeSubpart:
		r.SubpartID = identifier
		r.SubpartLabel = label
	case TypeSection:
		r.SectionID = identifier
		r.SectionLabel = label
	case TypeAppendix:
		r.AppendixID = identifier
		r.AppendixLabel = label
	case TypeSubjectGroup:
		r.SubjectGroupID = identifier
		r.SubjectGroupLabel = label
	}
}

// Identifier returns the record's own identifier, i.e. the one belonging to
// its hierarchy type.
func (r *Record) Identifier() string {
	switch r.Type {
	case TypeTitle:
		return r.TitleID
	case TypeChapter:
		return r.ChapterID
	case TypeSubchapter:
		return r.SubchapterID
	case TypePart:
		return r.PartID
	case TypeSubpart:
		return r.SubpartID
	case TypeSection:
		return r.SectionID
	case TypeAppendix:
		return r.AppendixID
	case TypeSubjectGroup:
		return r.SubjectGroupID
	default:
		return ""
	}
}
