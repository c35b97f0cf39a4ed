package domain

import "time"

type JobApplication struct {
	ID                   string
	FullName             string
	Email                string
	Phone                string
	CityCountry          string
	Position             string
	WorkType             string
	YearsOfExperience    string
	AboutYou             string
	Tools                []string
	PortfolioLink        string
	WorkedInAgencyBefore bool
	SubmittedAt          time.Time
}

const (
	PositionGraphicDesigner = "graphic_designer"
	PositionMotionDesigner  = "motion_designer"
	PositionContentCreator  = "content_creator"
	PositionMediaBuyer      = "media_buyer"
)

const (
	WorkTypeFullTime   = "full_time"
	WorkTypePartTime   = "part_time"
	WorkTypeRemote     = "remote"
	WorkTypeInternship = "internship"
)

const (
	ExperienceUnderOne  = "0_1"
	ExperienceOneThree  = "1_3"
	ExperienceThreeFive = "3_5"
	ExperienceFivePlus  = "5_plus"
)

func IsValidPosition(v string) bool {
	switch v {
	case PositionGraphicDesigner, PositionMotionDesigner, PositionContentCreator, PositionMediaBuyer:
		return true
	}
	return false
}

func IsValidWorkType(v string) bool {
	switch v {
	case WorkTypeFullTime, WorkTypePartTime, WorkTypeRemote, WorkTypeInternship:
		return true
	}
	return false
}

func IsValidExperience(v string) bool {
	switch v {
	case ExperienceUnderOne, ExperienceOneThree, ExperienceThreeFive, ExperienceFivePlus:
		return true
	}
	return false
}
