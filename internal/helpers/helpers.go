package helpers

import (
	"os"

	"github.com/hrplatform/freelancer-api/internal/constants"
)

// Stage constants define the possible deployment/runtime environments.
const (
	StageProd  = constants.StageProd
	StageDev   = constants.StageDev
	StageLocal = constants.StageLocal
	StageTest  = constants.StageTest
)

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal, StageTest:
		return true
	default:
		return false
	}
}

// GetStage resolves the runtime stage from the STAGE environment variable,
// defaulting to dev when unset.
func GetStage() string {
	stage := os.Getenv("STAGE")
	if stage == "" {
		return StageDev
	}
	return stage
}
