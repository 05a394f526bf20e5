package form

import "strconv"

// Dotted field paths used to key validation errors and observer
// subscriptions. Hobby sub-fields are addressed by list position, e.g.
// "hobbies.0.name".
const (
	PathFirstName        = "firstName"
	PathLastName         = "lastName"
	PathDateOfBirth      = "dateOfBirth"
	PathFramework        = "framework"
	PathFrameworkVersion = "frameworkVersion"
	PathEmail            = "email"
	PathHobbies          = "hobbies"
)

// HobbyNamePath returns the dotted path for the name sub-field of the hobby
// entry at idx.
func HobbyNamePath(idx int) string {
	return PathHobbies + "." + strconv.Itoa(idx) + ".name"
}

// HobbyDurationPath returns the dotted path for the duration sub-field of the
// hobby entry at idx.
func HobbyDurationPath(idx int) string {
	return PathHobbies + "." + strconv.Itoa(idx) + ".duration"
}
