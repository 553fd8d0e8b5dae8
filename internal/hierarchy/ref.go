package hierarchy

import "fmt"

// BuildRef computes the CFR reference string that uniquely keys a flattened
// record within the database, e.g. "27 CFR §5.63" or "27 CFR pt5-A".
//
// The exact shapes, including the leading space inside appendix parentheses,
// are kept stable because the reference is the upsert key: changing the
// format would orphan every previously stored row.
func BuildRef(r Record) string {
	if r.TitleID == "" {
		return "CFR " + r.Type
	}

	base := r.TitleID + " CFR"

	switch r.Type {
	case TypeTitle:
		return base

	case TypeChapter:
		if r.ChapterID == "" {
			return base
		}
		return fmt.Sprintf("%s ch%s", base, r.ChapterID)

	case TypeSubchapter:
		if r.ChapterID == "" || r.SubchapterID == "" {
			return base
		}
		return fmt.Sprintf("%s ch%s-%s", base, r.ChapterID, r.SubchapterID)

	case TypePart:
		if r.PartID == "" {
			return base
		}
		return fmt.Sprintf("%s pt%s", base, r.PartID)

	case TypeSubpart:
		if r.PartID == "" || r.SubpartID == "" {
			return base
		}
		return fmt.Sprintf("%s pt%s-%s", base, r.PartID, r.SubpartID)

	case TypeSection:
		if r.SectionID == "" {
			return base
		}
		return fmt.Sprintf("%s §%s", base, r.SectionID)

	case TypeAppendix:
		return appendixRef(base, r)

	case TypeSubjectGroup:
		return subjectGroupRef(base, r)

	default:
		return fmt.Sprintf("%s (%s)", base, r.Type)
	}
}

// appendixRef handles appendices attached to a section, a part, or neither
func appendixRef(base string, r Record) string {
	switch {
	case r.SectionID != "":
		if r.AppendixID == "" {
			return fmt.Sprintf("%s §%s", base, r.SectionID)
		}
		return fmt.Sprintf("%s §%s ( %s)", base, r.SectionID, r.AppendixID)
	case r.PartID != "":
		if r.AppendixID == "" {
			return fmt.Sprintf("%s pt%s", base, r.PartID)
		}
		return fmt.Sprintf("%s pt%s ( %s)", base, r.PartID, r.AppendixID)
	default:
		if r.AppendixID == "" {
			return base
		}
		return fmt.Sprintf("%s ( %s)", base, r.AppendixID)
	}
}

// subjectGroupRef qualifies a subject group by its closest identifying ancestor
func subjectGroupRef(base string, r Record) string {
	suffix := ""
	if r.SubjectGroupID != "" {
		suffix = fmt.Sprintf(" (Subj Grp %s)", r.SubjectGroupID)
	}

	switch {
	case r.AppendixID != "":
		if r.SectionID != "" {
			return fmt.Sprintf("%s §%s ( %s)%s", base, r.SectionID, r.AppendixID, suffix)
		}
		return fmt.Sprintf("%s ( %s)%s", base, r.AppendixID, suffix)
	case r.SectionID != "":
		return fmt.Sprintf("%s §%s%s", base, r.SectionID, suffix)
	case r.SubpartID != "":
		if r.PartID != "" {
			return fmt.Sprintf("%s pt%s-%s%s", base, r.PartID, r.SubpartID, suffix)
		}
		return fmt.Sprintf("%s (Subpart %s)%s", base, r.SubpartID, suffix)
	case r.PartID != "":
		return fmt.Sprintf("%s pt%s%s", base, r.PartID, suffix)
	case r.SubchapterID != "":
		if r.ChapterID != "" {
			return fmt.Sprintf("%s ch%s-%s%s", base, r.ChapterID, r.SubchapterID, suffix)
		}
		return fmt.Sprintf("%s (Subchapter %s)%s", base, r.SubchapterID, suffix)
	default:
		return base + suffix
	}
}
