package revision

import (
	"strings"

	"github.com/jonathan/resume-reviser/internal/prompts"
	"github.com/jonathan/resume-reviser/internal/types"
	"github.com/jonathan/resume-reviser/internal/validation"
)

// promptFile is the embedded prompt template file for section revision.
const promptFile = "revision.json"

// modePromptKeys maps each rewrite mode to its latitude prompt key.
var modePromptKeys = map[types.RewriteMode]string{
	types.ModeMinimal:    "revise-mode-minimal",
	types.ModeBalanced:   "revise-mode-balanced",
	types.ModeAggressive: "revise-mode-aggressive",
}

// buildSystemPrompt encodes the non-fabrication and markup-preservation
// rules, the section's declared kind, and the mode's rewriting latitude.
func buildSystemPrompt(kind types.SectionKind, mode types.RewriteMode) string {
	base := prompts.MustGet(promptFile, "revise-section-system")

	var sb strings.Builder
	sb.WriteString(prompts.Format(base, map[string]string{
		"Kind": string(kind),
	}))

	if key, ok := modePromptKeys[mode]; ok {
		sb.WriteString("\n\n")
		sb.WriteString(prompts.MustGet(promptFile, key))
	}

	return sb.String()
}

// buildUserPrompt carries the section content plus the optional external
// context. External text is quoted so the model treats it as data, and is
// passed through otherwise unmodified.
func buildUserPrompt(content, targetDescription, instructions string) string {
	var sb strings.Builder

	section := prompts.MustGet(promptFile, "revise-section-user")
	sb.WriteString(prompts.Format(section, map[string]string{
		"Content": content,
	}))

	if targetDescription != "" {
		target := prompts.MustGet(promptFile, "revise-target-context")
		sb.WriteString(prompts.Format(target, map[string]string{
			"Target": validation.QuoteExternalContent(targetDescription, "target role description"),
		}))
	}

	if instructions != "" {
		instr := prompts.MustGet(promptFile, "revise-user-instructions")
		sb.WriteString(prompts.Format(instr, map[string]string{
			"Instructions": validation.QuoteExternalContent(instructions, "owner instructions"),
		}))
	}

	return sb.String()
}
