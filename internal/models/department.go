package models

import (
	"fmt"
	"strings"
)

// Department is one of the fixed units of the education division.
// All records are partitioned by department.
type Department string

const (
	DepartmentInfant         Department = "Infant Ministry"
	DepartmentKindergarten   Department = "Kindergarten Ministry"
	DepartmentPrimary        Department = "Primary Ministry"
	DepartmentElementary     Department = "Elementary Ministry"
	DepartmentMiddleSchool   Department = "Middle School Ministry"
	DepartmentHighSchool     Department = "High School Ministry"
	DepartmentEnglishWorship Department = "English Worship Ministry"
)

var departments = []Department{
	DepartmentInfant,
	DepartmentKindergarten,
	DepartmentPrimary,
	DepartmentElementary,
	DepartmentMiddleSchool,
	DepartmentHighSchool,
	DepartmentEnglishWorship,
}

// Departments returns all departments in display order.
func Departments() []Department {
	d := make([]Department, len(departments))
	copy(d, departments)
	return d
}

// ParseDepartment returns the department with the given name.
// Matching ignores case and surrounding whitespace.
func ParseDepartment(name string) (Department, error) {
	name = strings.TrimSpace(name)
	for _, d := range departments {
		if strings.EqualFold(string(d), name) {
			return d, nil
		}
	}

	return "", fmt.Errorf("%w '%s'", ErrUnknownDepartment, name)
}

// Valid reports whether d is one of the fixed departments.
func (d Department) Valid() bool {
	_, err := ParseDepartment(string(d))
	return err == nil
}

func (d Department) String() string {
	return string(d)
}
