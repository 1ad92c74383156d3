package content

import "github.com/verte-zerg/folio/internal/model"

// Default returns the built-in catalog.
func Default() Content {
	return Content{
		Profile: Profile{
			Name:     "Clarence Kirk Macapobre",
			Headline: "A very good programmer yesss.",
			Summary:  "Welcome to my digital portfolio! I am very passionate about lots of stuff especially eating and sleeping like a lot a lot.",
			Photo:    "me.png",
			Caption:  "Aspiring Developer",
			Links: []Link{
				{Label: "LinkedIn", URL: "#"},
				{Label: "GitHub", URL: "#"},
			},
		},
		Metrics: []model.Metric{
			{Label: "Projects Completed", Value: "12", Delta: "+2 this month"},
			{Label: "Years of Experience", Value: "1.1111", Delta: "Learning everyday"},
			{Label: "Coffee Consumed", Value: "∞", Delta: "Cups"},
		},
		About: About{
			Story:         "I started my coding journey on january 20, 1967. yess good programmer...\n\nI love everything especially eating and sleeping. yes yes",
			Image:         "aboutme.png",
			ImageCaption:  "Coding workspace",
			Degree:        "Bachelor of Science in Information Technology",
			School:        "Cebu Institute of Technology",
			Years:         "2021 - present",
			EducationNote: "Specialized in sleeping and vibe coding.",
			Experience: []Experience{
				{
					Title:    "Bantay Tindahan (2015-Present)",
					Bullets:  []string{"I bantay.", "I also steal."},
					Expanded: true,
				},
				{
					Title:   "Intern at appletreefarm",
					Bullets: []string{"Assisted in getting apples.", "I sometimes steal apples."},
				},
			},
		},
		Projects: []model.Project{
			{Title: "Stock Price Predictor", Category: model.CategoryDataScience, Description: "Predicted stock prices using LSTM.", ImageRef: "https://via.placeholder.com/300"},
			{Title: "E-commerce Website", Category: model.CategoryWebDev, Description: "Full-stack shop built with React & Node.", ImageRef: "https://via.placeholder.com/300"},
			{Title: "Will email your job mates about random cat facts everyday", Category: model.CategoryAutomation, Description: "Automated weekly reporting emails.", ImageRef: "https://via.placeholder.com/300"},
			{Title: "Customer Segmentation", Category: model.CategoryDataScience, Description: "Clustering customers based on behavior.", ImageRef: "https://via.placeholder.com/300"},
		},
		Skills: []model.SkillEntry{
			{Name: "Python", Proficiency: 90},
			{Name: "SQL", Proficiency: 75},
			{Name: "Machine Learning", Proficiency: 60},
			{Name: "Web Development", Proficiency: 80},
			{Name: "Cloud (AWS)", Proficiency: 40},
		},
		Location: model.GeoPoint{Lat: 11.1761, Lon: 119.3891, Zoom: 10},
		Footer:   "Created by the dude himself",
	}
}
