package xbrl

import (
	"slices"
	"strings"

	"github.com/dgallion1/edgarparse/internal/edgarerr"
	"github.com/dgallion1/edgarparse/internal/xmltree"
)

// XBRLDINamespace is the dimensional instance namespace explicit members live in.
const XBRLDINamespace = "http://xbrl.org/2006/xbrldi"

// Context qualifies a fact with its entity, dimensional segments and period.
type Context struct {
	Entity   string    `json:"entity"`
	Segments []Segment `json:"segments"`
	Period   Period    `json:"period"`
}

// Segment is one explicit dimension member, both sides stripped of their
// namespace prefix.
type Segment struct {
	Dimension string `json:"dimension"`
	Member    string `json:"member"`
}

// Period is either an instant or a start/end range. Both forms absent is legal.
type Period struct {
	Instant   *string `json:"instant"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// Clone returns a deep copy so the caller owns its segments and dates.
func (c Context) Clone() Context {
	return Context{
		Entity:   c.Entity,
		Segments: slices.Clone(c.Segments),
		Period: Period{
			Instant:   clonePtr(c.Period.Instant),
			StartDate: clonePtr(c.Period.StartDate),
			EndDate:   clonePtr(c.Period.EndDate),
		},
	}
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// BuildContexts maps each top-level context id to its Context. A context
// without an id, or without an entity/identifier text, fails the whole
// document.
func BuildContexts(root *xmltree.Node) (map[string]Context, error) {
	dimNS, _ := root.NamespaceURI("xbrldi")

	contexts := make(map[string]Context)
	for _, node := range root.ChildrenByTag("context") {
		id, ok := node.Attr("id")
		if !ok {
			return nil, &edgarerr.MissingElementError{Tag: "@id", Path: node.PathString()}
		}
		ctx, err := parseContext(node, dimNS)
		if err != nil {
			return nil, err
		}
		contexts[id] = ctx
	}
	return contexts, nil
}

func parseContext(node *xmltree.Node, dimNS string) (Context, error) {
	entity, ok := node.Child("entity")
	if !ok {
		return Context{}, &edgarerr.MissingElementError{Tag: "entity", Path: node.PathString()}
	}
	ident, ok := entity.Child("identifier")
	if !ok {
		return Context{}, &edgarerr.MissingElementError{Tag: "identifier", Path: entity.PathString()}
	}
	identText, ok := ident.Text()
	if !ok {
		return Context{}, &edgarerr.MissingElementError{Tag: "identifier", Path: entity.PathString()}
	}

	ctx := Context{Entity: identText, Segments: []Segment{}}
	for _, seg := range entity.ChildrenByTag("segment") {
		for _, member := range seg.ChildrenByTag("explicitMember") {
			if !isDimensionNamespace(member.Name.Space, dimNS) {
				continue
			}
			dim, ok := member.Attr("dimension")
			if !ok {
				return Context{}, &edgarerr.MissingElementError{Tag: "@dimension", Path: member.PathString()}
			}
			mem, ok := member.Text()
			if !ok {
				return Context{}, &edgarerr.MissingElementError{Tag: "explicitMember", Path: seg.PathString()}
			}
			ctx.Segments = append(ctx.Segments, Segment{
				Dimension: StripPrefix(dim),
				Member:    StripPrefix(mem),
			})
		}
	}

	if period, ok := node.Child("period"); ok {
		ctx.Period.Instant = optText(period, "instant")
		ctx.Period.StartDate = optText(period, "startDate")
		ctx.Period.EndDate = optText(period, "endDate")
	}
	return ctx, nil
}

// isDimensionNamespace accepts the xbrldi URI, whatever URI the document
// binds to the xbrldi prefix, and unbound names.
func isDimensionNamespace(space, declared string) bool {
	switch space {
	case XBRLDINamespace, "", "xbrldi":
		return true
	}
	return declared != "" && space == declared
}

// StripPrefix drops everything up to and including the first ':'. Text with
// no prefix is returned unchanged.
func StripPrefix(qname string) string {
	if _, local, ok := strings.Cut(qname, ":"); ok {
		return local
	}
	return qname
}

func optText(n *xmltree.Node, tag string) *string {
	s, ok := n.ChildText(tag)
	if !ok {
		return nil
	}
	return &s
}
