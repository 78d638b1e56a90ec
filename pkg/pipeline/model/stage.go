package model

// StageCategory identifies a pipeline stage kind. BizTalk stores these as
// fixed category GUIDs in the pipeline document.
type StageCategory string

// Stage category identifiers as they appear in .btp documents.
const (
	CategoryDecode       StageCategory = "9d0e4103-4cce-4536-83fa-4a5040674ad6"
	CategoryDisassemble  StageCategory = "9d0e4105-4cce-4536-83fa-4a5040674ad6"
	CategoryValidate     StageCategory = "9d0e410d-4cce-4536-83fa-4a5040674ad6"
	CategoryResolveParty StageCategory = "9d0e410e-4cce-4536-83fa-4a5040674ad6"
	CategoryPreAssemble  StageCategory = "9d0e4101-4cce-4536-83fa-4a5040674ad6"
	CategoryAssemble     StageCategory = "9d0e4107-4cce-4536-83fa-4a5040674ad6"
	CategoryEncode       StageCategory = "9d0e4108-4cce-4536-83fa-4a5040674ad6"
)

// Canonical stage display names.
const (
	StageNameDecode       = "Decode"
	StageNameDisassemble  = "Disassemble"
	StageNameValidate     = "Validate"
	StageNameResolveParty = "ResolveParty"
	StageNamePreAssemble  = "PreAssemble"
	StageNameAssemble     = "Assemble"
	StageNameEncode       = "Encode"
)

var stageNames = map[StageCategory]string{
	CategoryDecode:       StageNameDecode,
	CategoryDisassemble:  StageNameDisassemble,
	CategoryValidate:     StageNameValidate,
	CategoryResolveParty: StageNameResolveParty,
	CategoryPreAssemble:  StageNamePreAssemble,
	CategoryAssemble:     StageNameAssemble,
	CategoryEncode:       StageNameEncode,
}

// StageDisplayName returns the canonical display name for a stage category.
// Unknown categories display as "Stage".
func StageDisplayName(category StageCategory) string {
	if name, ok := stageNames[category]; ok {
		return name
	}

	return "Stage"
}

// Stage is a named phase within a pipeline holding zero or more components.
type Stage struct {
	Category      StageCategory
	Description   string
	ExecutionMode string
	Components    []*Component
}

// DisplayName returns the canonical display name derived from the stage category.
func (s *Stage) DisplayName() string {
	return StageDisplayName(s.Category)
}
