package deck

// rule is one extraction step: the fields it looks for and how it packs
// them into the section. A non-empty nestKey nests the capture under that
// single key; an empty nestKey spreads each captured field at the top
// level of the section.
type rule struct {
	tag     string
	title   string
	fields  []string
	nestKey string
}

// rules is evaluated in order, and that order is a contract: it is the
// sequential-copy order shown to the user, identity and context first,
// heavier content after.
var rules = []rule{
	{
		tag:     "header",
		title:   "Header",
		fields:  []string{"id", "title", "version", "extraction_date", "source", "deck_id", "kernel_count", "compression_ratio"},
		nestKey: "data",
	},
	{tag: "emotional_arc", title: "Emotional Arc", fields: []string{"emotional_arc"}, nestKey: "emotional_arc"},
	{tag: "heat_signature", title: "Heat Signature", fields: []string{"heat_signature"}, nestKey: "heat_signature"},
	{tag: "language_motifs", title: "Language & Motifs", fields: []string{"language_patterns", "motifs"}},
	{tag: "physical_anchors", title: "Physical Anchors", fields: []string{"physical_anchors"}, nestKey: "physical_anchors"},
	{tag: "visual_description", title: "Visual Description", fields: []string{"visual_description"}, nestKey: "visual_description"},
	{tag: "dynamics", title: "Dynamics", fields: []string{"consent_pattern", "power_dynamic", "aftercare"}},
	{tag: "core_truth", title: "Core Truth", fields: []string{"pattern_boundaries", "what_makes_it_work", "core_truth", "why_it_matters"}},
	{tag: "cubic_attractor", title: "Cubic Attractor", fields: []string{"cubic_attractor"}, nestKey: "cubic_attractor"},
	{tag: "export", title: "Export", fields: []string{"replication_notes", "export_notes", "closing_image", "heat_at_close", "sigil"}},
}

// Segment partitions one kernel into its ordered sections. A rule that
// matches none of its fields emits nothing. If fewer than two sections
// come out, segmentation is inapplicable and the original record is
// returned as the sole element.
func Segment(rec Record) []Section {
	var sections []Section
	for _, r := range rules {
		captured := map[string]any{}
		for _, f := range r.fields {
			if v, ok := rec[f]; ok {
				captured[f] = v
			}
		}
		if len(captured) == 0 {
			continue
		}

		sec := Section{
			"section": r.tag,
			"title":   r.title,
			"id":      recordID(rec),
		}
		if r.nestKey != "" {
			if len(r.fields) == 1 {
				sec[r.nestKey] = captured[r.fields[0]]
			} else {
				sec[r.nestKey] = captured
			}
		} else {
			for k, v := range captured {
				sec[k] = v
			}
		}
		sections = append(sections, sec)
	}

	if len(sections) <= 1 {
		return []Section{rec}
	}
	return sections
}

func recordID(rec Record) any {
	if id, ok := rec["id"]; ok {
		return id
	}
	return "unknown"
}
