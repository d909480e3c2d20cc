package model

// Default returns the built-in corpus of the portfolio.
func Default() *Content {
	return NewContent(Sections{
		Profile: Profile{
			Name:        "Myriam Ouraou",
			SiteTitle:   "Myriam Ouraou - Portfolio",
			Description: "Portfolio of Myriam Ouraou, engineer and PhD student in cybersecurity",
			Tagline:     "Cybersecurity · Vulnerabilities · Threat Intelligence",
			Headline:    "Engineer - PhD student",
			Bio:         "I am studying the prioritisation and optimisation of vulnerability management through graph and hypergraph learning in order to provide more context and leverage for the industry.",
			Email:       "myriam.ouraou@gmail.com",
			Portrait:    "pp.jpg",
			ContactText: "I am open to collaborations, conferences, or questions. Feel free to contact me!",
		},
		Languages: []Language{
			{Flag: "🇫🇷", Name: "Français"},
			{Flag: "🇬🇧", Name: "English"},
			{Flag: "🇩🇪", Name: "Deutsch"},
		},
		Socials: []SocialLink{
			{Kind: LinkedIn, URL: "https://www.linkedin.com/in/myriam-ouraou/"},
			{Kind: GitHub, URL: "https://github.com/dothrak"},
		},
		Timeline: []TimelineStep{
			{
				Title:       "Lycée Schweitzer, Le Raincy",
				Description: "Double degree: French Scientific Baccalaureate + German Abitur (Abibac section)",
				Period:      "2017-2020",
			},
			{
				Title:       "Lycée Raspail, Paris 14e",
				Description: "CPGE PCSI",
				Period:      "2020-2021",
			},
			{
				Title:       "Lycée Carnot, Paris 17e",
				Description: "CPGE PC",
				Period:      "2021-2022",
			},
			{
				Title:       "ESILV Paris, Courbevoie",
				Description: "Engineering programme in Connected Objects and Cybersecurity",
				Period:      "2022-2025",
			},
			{
				Title:       "Thales Digital Factory, Paris",
				Description: "Cybersecurity, Threats and Vulnerabilities Engineering Apprentice",
				Period:      "2023-2025",
			},
			{
				Title:       "HeadMind Partners Belgium, Bruxelles",
				Description: "Cybersecurity and Security Risk Consultant Internship",
				Period:      "2025",
			},
			{
				Title:       "Thales Digital Factory, Paris",
				Description: "PhD thesis",
				Period:      "2025-présent",
			},
		},
		Glossary: []GlossaryEntry{
			{Term: "CPGE", Meaning: "Preparatory class for French grandes écoles"},
			{Term: "PCSI", Meaning: "Physics, Chemistry and Engineering Science"},
			{Term: "PC", Meaning: "Physics and Chemistry"},
		},
		Research: []ResearchAxis{
			{
				Title:       "Multi-criteria modelling of vulnerabilities (graphs and hypergraphs)",
				Description: "Using graphs to represent CVEs, their attributes, and complex relationships, enabling in-depth analysis.",
			},
			{
				Title:       "Community analysis and spectral partitioning",
				Description: "Study of vulnerability clusters to identify similar families or behaviours.",
			},
			{
				Title:       "Prediction via graph learning",
				Description: "Using graph machine learning to anticipate the evolution, exploitation and criticality of vulnerabilities.",
			},
		},
		Publications: []Publication{
			{
				Title: "Beyond the CVSS: Rethinking the Contextualisation of CVEs in a Connected World",
				Venue: "ECCWS 2024",
				Link:  "https://www.researchgate.net/publication/393048365_Beyond_the_CVSS_Rethinking_the_Contextualisation_of_CVEs_in_a_Connected_World",
				Description: "In the context of globalized information technology, managing the ever-increasing number of CVEs has become one of the biggest challenges for security teams. " +
					"It is no longer enough to rely solely on CVSS scores: effective vulnerability management requires contextualisation, taking into account both technical and business impacts. " +
					"This document explores maturity levels in vulnerability management, the role of new indicators, and the growing dependence on the NVD, whose disruption in 2024 highlighted critical weaknesses in current processes.",
			},
		},
		Projects: []Project{
			{
				Title: "Automated CVE detection and prioritisation system",
				Description: "Development in Python of a tool packaged under Linux that automatically analyses an inventory of assets and identifies associated vulnerabilities. " +
					"CVEs are prioritised according to several criteria (CVSS, context, EPSS, available exploits, asset criticality) in order to establish a relevant patching order. " +
					"The tool generates a daily summary sent by email to security teams and produces a spreadsheet consolidating all the results.",
				Link:       "#",
				Visibility: Private,
				Status:     Done,
			},
			{
				Title: "Analysis of zero-day vulnerabilities and study of their patterns",
				Description: "Study of the behaviour of zero-day vulnerabilities through the analysis of several databases (NVD, MITRE, ExploitDB, ZeroDay Initiative, etc.). " +
					"Extraction of patterns and trends in order to anticipate future critical vulnerabilities.",
				Link:       "#",
				Visibility: Public,
				Status:     InProgress,
			},
		},
	})
}
