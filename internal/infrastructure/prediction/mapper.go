package prediction

import (
	"strings"

	"github.com/afyakuu/platform-api/internal/core/domain"
	"github.com/afyakuu/platform-api/internal/core/ports"
)

// MapHistory collapses the richer UI vocabulary of the questionnaire into the
// exact string vocabulary the model was trained on. Unknown or empty values
// collapse to fixed defaults; range answers collapse to representative
// integers.
func MapHistory(age string, history domain.MedicalHistory) ports.PredictionRequest {
	return ports.PredictionRequest{
		Age:               age,
		AgeFirstSex:       mapFirstSexualActivityAge(history.FirstSexualActivityAge),
		SexualPartners:    mapSexualPartners(history.SexualPartners),
		Smoking:           history.SmokingStatus,
		STDsHistory:       history.STDHistory,
		Region:            history.Region,
		Insurance:         history.InsuranceCovered,
		HPVTest:           mapHPVStatus(history.HPVStatus),
		PapSmear:          mapPapSmearResult(history.PapSmearResult),
		LastScreeningType: mapScreeningType(history.ScreeningTypeLast),
	}
}

func mapHPVStatus(status string) string {
	switch strings.ToLower(status) {
	case "positive":
		return "POSITIVE"
	default:
		// unknown and negative both collapse to NEGATIVE
		return "NEGATIVE"
	}
}

func mapPapSmearResult(result string) string {
	if result == "Y" {
		return "Y"
	}
	return "N"
}

func mapScreeningType(screeningType string) string {
	switch screeningType {
	case "PAP SMEAR", "HPV DNA", "VIA":
		return screeningType
	default:
		// never screened, empty, and anything unrecognised default to PAP SMEAR
		return "PAP SMEAR"
	}
}

func mapSexualPartners(partners string) string {
	switch partners {
	case "0", "1", "2", "3", "4", "5":
		return partners
	case "6-10":
		return "8" // middle of the range
	case "11+":
		return "15"
	case "":
		return "1"
	default:
		return partners
	}
}

func mapFirstSexualActivityAge(age string) string {
	switch age {
	case "26-30":
		return "28" // middle of the range
	case "31+":
		return "35"
	case "":
		return "18"
	default:
		return age
	}
}
