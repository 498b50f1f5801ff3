package internal

import "fmt"

// ModeKind selects how the body is repeated
type ModeKind int

// Mode kind constants
const (
	ModeDirect   ModeKind = iota // Whole body repeated once per index
	ModeTargeted                 // Only the marked sub-sequence repeated
)

// String returns the string representation of the mode kind
func (m ModeKind) String() string {
	if m == ModeTargeted {
		return ModeNameTargeted
	}
	return ModeNameDirect
}

// Enclosure is one group that surrounds a nested marker site. Group keeps
// the shell (delimiter and position); its inner sequence is rebuilt from
// Prefix, the expanded contents and Suffix.
type Enclosure struct {
	Prefix TokenSequence
	Group  Token
	Suffix TokenSequence
}

// ExpansionMode is the result of marker detection.
//
// In targeted mode Prefix, Marked and Suffix partition the innermost
// sequence that holds the marker: the tokens before `#`, the tokens inside
// the parenthesized group, and the tokens after `*`. Enclosing lists the
// groups around that sequence, outermost first, and is empty for a
// top-level marker.
type ExpansionMode struct {
	Kind      ModeKind
	Prefix    TokenSequence
	Marked    TokenSequence
	Suffix    TokenSequence
	Enclosing []Enclosure
	Position  Position // Position of the marker punct
}

// markerSite locates a marker: the group indices leading to the sequence
// that holds it, and the index of the marker punct in that sequence
type markerSite struct {
	path  []int
	index int
	pos   Position
}

// DetectMode scans body depth-first for a repetition marker. No marker
// selects direct mode; exactly one selects targeted mode. A second marker
// anywhere, or a marker group missing its repeat suffix, is a structure
// error.
func DetectMode(body TokenSequence, syntax Syntax) (ExpansionMode, error) {
	var sites []markerSite
	if err := findMarkers(body, syntax, nil, &sites); err != nil {
		return ExpansionMode{}, err
	}

	switch len(sites) {
	case 0:
		return ExpansionMode{Kind: ModeDirect}, nil
	case 1:
		return targetedMode(body, sites[0]), nil
	default:
		second := sites[1]
		return ExpansionMode{}, NewStructureError(ConstructMarker,
			fmt.Sprintf(ErrFmtMultipleMarkers, ErrMsgMultipleMarkers, sites[0].pos), second.pos)
	}
}

// findMarkers walks seq in pre-order and records every marker site.
// Stops early once a second site is known.
func findMarkers(seq TokenSequence, syntax Syntax, path []int, sites *[]markerSite) error {
	for i := 0; i < len(seq); i++ {
		tok := seq[i]

		if tok.IsPunct(syntax.Marker) && i+1 < len(seq) && seq[i+1].IsGroup(DelimParen) {
			if i+2 >= len(seq) || !seq[i+2].IsPunct(syntax.Repeat) {
				return NewStructureError(ConstructMarker,
					fmt.Sprintf(ErrFmtMarkerMissingStar, ErrMsgMarkerMissingStar, syntax.Repeat), tok.Position)
			}
			*sites = append(*sites, markerSite{
				path:  append([]int(nil), path...),
				index: i,
				pos:   tok.Position,
			})
			if len(*sites) > 1 {
				return nil
			}
			// markers nested in the marked group count as well
			if err := findMarkers(seq[i+1].Inner, syntax, append(path, i+1), sites); err != nil {
				return err
			}
			if len(*sites) > 1 {
				return nil
			}
			i += 2
			continue
		}

		if tok.Kind == KindGroup {
			if err := findMarkers(tok.Inner, syntax, append(path, i), sites); err != nil {
				return err
			}
			if len(*sites) > 1 {
				return nil
			}
		}
	}
	return nil
}

// targetedMode partitions body around the marker at site
func targetedMode(body TokenSequence, site markerSite) ExpansionMode {
	mode := ExpansionMode{Kind: ModeTargeted, Position: site.pos}

	seq := body
	for _, idx := range site.path {
		mode.Enclosing = append(mode.Enclosing, Enclosure{
			Prefix: seq[:idx:idx],
			Group:  seq[idx].WithInner(nil),
			Suffix: seq[idx+1:],
		})
		seq = seq[idx].Inner
	}

	mode.Prefix = seq[:site.index:site.index]
	mode.Marked = seq[site.index+1].Inner
	mode.Suffix = seq[site.index+3:]
	return mode
}
