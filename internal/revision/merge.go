package revision

import (
	"github.com/jonathan/resume-reviser/internal/sectioning"
	"github.com/jonathan/resume-reviser/internal/types"
)

// MergeProposals applies the user's accept/reject decisions over a
// completed job's proposals and recombines them into final document text.
// No regeneration occurs: the merge is a pure, synchronous recombination.
//
// The locked set is deliberately empty here: the explicit accept/reject
// decision subsumes the lock policy for this one merge, and a rejected kind
// simply keeps its Before content.
func MergeProposals(doc *types.ParsedDocument, proposals []types.SectionProposal, accepted map[types.SectionKind]bool) string {
	replacements := make(map[types.SectionKind]string, len(proposals))
	for _, p := range proposals {
		if accepted[p.Kind] {
			replacements[p.Kind] = p.After
		} else {
			replacements[p.Kind] = p.Before
		}
	}

	return sectioning.AssembleWithModifications(doc, replacements, nil)
}
