package formaterror

import "strings"

// FormatError maps raw database constraint errors to the user-facing
// messages controllers return.
func FormatError(err string) map[string]string {
	errorMessages := make(map[string]string)

	lower := strings.ToLower(err)
	if strings.Contains(lower, "username") {
		errorMessages["Taken_username"] = "Username Already Taken"
	}
	if strings.Contains(lower, "email") {
		errorMessages["Taken_email"] = "Email Already Taken"
	}
	if strings.Contains(lower, "idx_prediction_user_match") {
		errorMessages["Already_predicted"] = "Prediction already locked in for this match"
	}
	if strings.Contains(lower, "idx_entry_user_night") {
		errorMessages["Already_entered"] = "Bracket already locked in for this night"
	}
	if strings.Contains(lower, "hashedpassword") || strings.Contains(lower, "mismatched") {
		errorMessages["Incorrect_password"] = "Incorrect Password"
	}
	if strings.Contains(lower, "record not found") {
		errorMessages["No_record"] = "No Record Found"
	}

	if len(errorMessages) == 0 {
		errorMessages["Incorrect_details"] = "Incorrect Details"
	}
	return errorMessages
}
