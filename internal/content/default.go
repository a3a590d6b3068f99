package content

// Default is the built-in profile.
func Default() *Profile {
	return &Profile{
		Name: "Sitesh Muduli",
		Hero: []string{"Sitesh Muduli", "Data Engineer"},
		Links: []Link{
			{Label: "Contact", URL: "mailto:mudulisitesh@gmail.com"},
			{Label: "GitHub", URL: "https://github.com/mudulisitesh"},
		},
		Skills: []SkillGroup{
			{Category: "Languages", Items: []string{"Python", "C/C++", "SQL", "Go", "Spark"}},
			{Category: "Cloud", Items: []string{"Azure Databricks", "Azure Data-Factory", "Azure Synapse Studio"}},
			{Category: "Tools", Items: []string{"Git", "Docker", "VS Code", "Visual Studio", "PyCharm"}},
			{Category: "Libraries", Items: []string{"Sci-kit learn", "Pandas", "Seaborn"}},
		},
		Experience: []Experience{
			{
				Company: "Shell India Market Pvt Ltd.",
				Role:    "Data Engineer",
				Period:  "August 2023 - Present",
				Responsibilities: []string{
					"Modified ETL Pipeline to achieve 30% faster Pipeline runtime, and achieved 20% less resource utilisation.",
					"Saved estimated $30K in resources by automating emails for the business.",
					"Achieved a 68% carbon emission reduction due to optimisation in SQL Queries and Stored Procedures.",
					"Implemented incremental load methodology as opposed to full load to make data reliable and improved data load speeds by 40%",
					"Was involved in consumer facing side of the business, hence had frequent interactions with customers as well as stake holders, leading to working in extremely fast paced environment.",
					"Did Github Actions, CI/CD Setup for a large project, and migrating the codebase to github, with setting up security policies and branch protection policies. Also involved in setting up build pipelines using YML files for github actions metadata",
				},
			},
		},
		Education: []Education{
			{
				Degree:      "Bachelor of Technology",
				Field:       "Chemical Engineering",
				Institution: "National Institute Of Technology Rourkela",
				Year:        "2019 - 2023",
				Achievements: []string{
					"Did My Research Project in CO2 Adsorption Simulation using ASPEN Adsorption software.",
				},
			},
		},
	}
}
