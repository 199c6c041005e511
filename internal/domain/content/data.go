package content

const (
	scholarURL  = "https://scholar.google.com/citations?user=eK1bg80AAAAJ&hl=en&oi=ao"
	linkedInURL = "https://www.linkedin.com/in/sergey-galitskiy/"
	orcidURL    = "https://orcid.org/0000-0003-1559-2558"
)

func documents() []Link {
	return []Link{
		{Name: "Download CV", URL: CVPath},
		{Name: "Download Resume", URL: ResumePath},
	}
}

func hero() Hero {
	return Hero{
		Name:     "Dr. Sergey Galitskiy",
		Position: []string{"Postdoctoral Researcher Physics Department", "University of South Florida"},
		Specialization: "Specializing in Molecular Dynamics (MD), Density Functional Theory (DFT), " +
			"Machine Learning (ML), Shock Physics, and Computational Materials Science",
		Links: []Link{
			{Name: "Google Scholar", URL: scholarURL},
			{Name: "LinkedIn Profile", URL: linkedInURL},
		},
	}
}

func about() About {
	return About{
		Summary: "Dedicated to advancing scientific knowledge and fostering academic excellence through cutting-edge research, " +
			"industry partnerships, and innovative solutions. Bridging the gap between fundamental science and practical " +
			"applications to solve real-world challenges in materials engineering, sustainable technologies, and high-performance computing.",
		Intro: "As a research scientist at the University of South Florida, I specialize in computational materials science " +
			"with a focus on molecular dynamics (MD) and density functional theory (DFT), shock physics, and laser-matter interactions. " +
			"My research investigates the atomic-scale mechanisms underlying material behavior under extreme conditions.",
		Focus: []string{
			"deformation mechanisms, spall failure, and microstructural evolution in light-weight and refractory metals;",
			"mechanisms of deformation and melting in Carbon systems at conditions relevant to ICF at NIF and interplanetary science;",
			"development of new quantum-accurate machine learning interatomic potentials (MLIP);",
			"analysis tools for atomistic data with Ovito and Python.",
		},
		Highlights: []Highlight{
			{
				Title:       "Research Excellence",
				Description: "Leading innovative research projects with significant academic impact",
				Details: []string{
					"High-impact publications in Nature and top-tier journals",
					"DOE-funded research on materials under extreme conditions",
					"Collaboration with national laboratories (LLNL, LANL, ORNL)",
					"Development of novel computational methodologies",
				},
			},
			{
				Title:       "Academic Achievement",
				Description: "Recognized expertise in field with numerous publications and citations",
				Details: []string{
					"255+ citations with h-index of 8",
					"18+ peer-reviewed publications",
					"Teaching Excellence Award (UConn, 2021)",
					"Multiple conference presentations and invited talks",
				},
			},
			{
				Title:       "Collaboration",
				Description: "Building bridges between academia and industry through strategic partnerships",
				Details: []string{
					"NSF-funded Accelerator Track I: Sustainable Materials - 'ML-assisted plastic recycling for large-scale industrial use' with Stanley Black & Decker",
					"International research collaborations in shock physics spanning Germany, France, and USA",
					"Cross-disciplinary projects integrating computational physics and materials engineering",
					"Active collaborations with key DoE national laboratories: LANL, LLNL, and Johns Hopkins Applied Physics Laboratory",
					"Lectures and mentoring of PhD and undergraduate students in advanced computational methods",
				},
			},
			{
				Title:       "Innovation",
				Description: "Driving forward-thinking solutions across multiple domains",
				Details: []string{
					"Failure analysis of tribological systems (patent # XXXX)",
					"Advanced CAE design of oscillating tools (patent pending)",
					"Thermal management (electronics) and steel heat treatment",
					"Analysis tools for atomistic systems",
				},
			},
		},
		Documents: documents(),
	}
}

func experience() []Experience {
	return []Experience{
		{
			Title:    "Post Doctoral Researcher",
			Company:  "University of South Florida",
			Location: "Tampa, FL",
			Period:   "08/2024 - Present",
			Logo:     "/images/University_of_South_Florida_seal.png",
			LogoAlt:  "University of South Florida Logo",
			Bullets: []string{
				"Developed HPC workflows for predicting materials behavior under extreme conditions for planetary science and inertial confinement fusion (ICF), funded by DoE",
				"Performed large-scale Molecular Dynamics (MD) and quantum MD simulations to develop machine-learned interatomic potentials (MLIPs) for Carbon systems",
				"Analyzed large atomic datasets to tailor MLIPs to objective functions for elevated accuracy, in collaboration with LLNL",
				"Maintained and optimized computational codes across leading HPC clusters",
				"Published peer-reviewed articles for Carbon in extreme conditions",
			},
		},
		{
			Title:    "Material Simulation Scientist II",
			Company:  "Stanley Black & Decker, Inc.",
			Location: "New Britain, CT",
			Period:   "11/2021 - 02/2024",
			Logo:     "/images/Stanley-Black-Decker-logo.png",
			LogoAlt:  "Stanley Black & Decker Logo",
			LogoSize: "large",
			Bullets: []string{
				"Expedited new product development across 10+ product lines by combining Material Science, Engineering, and ML",
				"Provided comprehensive Finite Element Modeling (FEM) analyses for mechanical, modal, acoustic, and thermal management of steels and ceramics",
				"Secured and led funding exceeding $0.5M in interdisciplinary research grants, notably from NSF Convergence Accelerator program: Track I: sustainable materials",
				"Developed cutting-edge composite PVD-coated materials for high-performance tribological applications",
			},
		},
		{
			Title:    "Graduate Assistant",
			Company:  "University of Connecticut",
			Location: "Storrs, CT",
			Period:   "08/2016 - 10/2021",
			Logo:     "/images/University_of_connecticut.png",
			LogoAlt:  "University of Connecticut Logo",
			Bullets: []string{
				"Completed PhD dissertation: 'Modeling the Laser-Induced Phenomena and Spall Failure of Metal Microstructures at the Atomic Scales and the Mesoscales'",
				"Led development of multi-processor scientific codes (Fortran+Python) employing MD and hybrid MD with FEM",
				"Enhanced MD-TTM scientific code for modeling metal-laser radiation interaction at nano-experimental scales",
				"Published multiple high-impact research manuscripts and presented at prestigious scientific conferences",
			},
		},
		{
			Title:    "Graduate Assistant",
			Company:  "University of Kassel",
			Location: "Kassel, Germany",
			Period:   "10/2013 - 02/2016",
			Logo:     "/images/University_of_Kassel.png",
			LogoAlt:  "University of Kassel Logo",
			LogoSize: "medium",
			Bullets: []string{
				"Researched neuro cell behavior through atomistic modeling of protein-membrane complexes interaction",
				"Developed ab-initio methods for predicting electron dynamics during electronic excitation-relaxation in small molecules",
				"Published articles for prediction of electron and photon spectra of single-photon excited small molecules",
				"Instructed students in mathematical methods for physics problems",
			},
		},
	}
}

func education() []Education {
	return []Education{
		{
			Degree:      "Ph.D. in Materials Science and Engineering",
			Institution: "University of Connecticut",
			Location:    "Storrs, CT",
			Year:        "2021",
			Logo:        "/images/University_of_connecticut.png",
			LogoAlt:     "University of Connecticut Logo",
			Description: "Dissertation: 'Modeling the Laser-Induced Phenomena and Spall Failure of Metal Microstructures at the Atomic Scales and the Mesoscales'",
		},
		{
			Degree:      "M.S. in Physics",
			Institution: "South Federal University",
			Location:    "Rostov-on-Don, Russia",
			Year:        "2011",
			Logo:        "/images/University_of_south_federal_rostov.png",
			LogoAlt:     "South Federal University Logo",
			Description: "Thesis: 'Local selection rules for construction of quasicrystal lattices'",
		},
		{
			Degree:      "B.S. in Physics",
			Institution: "South Federal University",
			Location:    "Rostov-on-Don, Russia",
			Year:        "2009",
			Logo:        "/images/University_of_south_federal_rostov.png",
			LogoAlt:     "South Federal University Logo",
			Description: "Thesis: 'EXAFS spectra of perovskite structures as a function of local atomic arrangement'",
		},
	}
}

func publications() []Publication {
	return []Publication{
		{
			Title:        "Hartree-Fock calculation of the differential photoionization cross sections of small Li clusters",
			Authors:      "SA Galitskiy, AN Artemyev, K Jänkälä, BM Lagutin, PV Demekhin",
			Journal:      "The Journal of chemical physics",
			Year:         "2015",
			Volume:       "142 (3)",
			Pages:        "034304",
			DOI:          "10.1063/1.4906072",
			URL:          "https://pubs.aip.org/aip/jcp/article/142/3/034304/196790/Hartree-Fock-calculation-of-the-differential",
			Citations:    51,
			Type:         "Journal Article",
			Illustration: "/images/li_clusters_2015.jpg",
		},
		{
			Title:        "Dynamic evolution of microstructure during laser shock loading and spall failure of single crystal Al at the atomic scales",
			Authors:      "S Galitskiy, DS Ivanov, AM Dongare",
			Journal:      "Journal of Applied Physics",
			Year:         "2018",
			Volume:       "124 (20)",
			Pages:        "205901",
			DOI:          "10.1063/1.5051618",
			URL:          "https://doi.org/10.1063/1.5051618",
			Citations:    49,
			Type:         "Journal Article",
			CoverImage:   "/images/jap_2018_cover.jpg",
			Illustration: "/images/al_shock_2018.jpg",
		},
		{
			Title:        "Modeling the damage evolution and recompression behavior during laser shock loading of aluminum microstructures at the mesoscales",
			Authors:      "S Galitskiy, AM Dongare",
			Journal:      "Journal of Materials Science",
			Year:         "2021",
			Volume:       "56 (6)",
			Pages:        "4446-4469",
			DOI:          "10.1007/s10853-020-05523-4",
			URL:          "https://doi.org/10.1007/s10853-020-05523-4",
			Citations:    30,
			Type:         "Journal Article",
			CoverImage:   "/images/jms_2021_cover.jpg",
			Illustration: "/images/al_mesoscale_2021.jpg",
		},
		{
			Title:        "Shock-induced deformation twinning and softening in magnesium single crystals",
			Authors:      "TJ Flanagan, S Vijayan, S Galitskiy, J Davis, BA Bedard, CL Williams, et al.",
			Journal:      "Materials & Design",
			Year:         "2020",
			Volume:       "194",
			Pages:        "108884",
			DOI:          "10.1016/j.matdes.2020.108884",
			URL:          "https://doi.org/10.1016/j.matdes.2020.108884",
			Citations:    29,
			Type:         "Journal Article",
			Illustration: "/images/mg_twinning_2020.jpg",
		},
		{
			Title:        "Understanding the plasticity contributions during laser-shock loading and spall failure of Cu microstructures at the atomic scales",
			Authors:      "MJ Echeverria, S Galitskiy, A Mishra, R Dingreville, AM Dongare",
			Journal:      "Computational Materials Science",
			Year:         "2021",
			Volume:       "198",
			Pages:        "110668",
			DOI:          "10.1016/j.commatsci.2021.110668",
			URL:          "https://doi.org/10.1016/j.commatsci.2021.110668",
			Citations:    26,
			Type:         "Journal Article",
			Illustration: "/images/cu_plasticity_2021.jpg",
		},
		{
			Title:        "Virtual texture analysis to investigate the deformation mechanisms in metal microstructures at the atomic scale",
			Authors:      "A Mishra, MJ Echeverria, K Ma, S Parida, C Chen, S Galitskiy, et al.",
			Journal:      "Journal of Materials Science",
			Year:         "2022",
			Volume:       "57 (23)",
			Pages:        "10549-10568",
			DOI:          "10.1007/s10853-022-07388-0",
			URL:          "https://link.springer.com/article/10.1007/s10853-022-07388-0",
			Citations:    17,
			Type:         "Journal Article",
			Illustration: "/images/virtual_texture_2022.jpg",
		},
		{
			Title:        "Modeling shock-induced void collapse in single-crystal Ta systems at the mesoscales",
			Authors:      "S Galitskiy, A Mishra, AM Dongare",
			Journal:      "International Journal of Plasticity",
			Year:         "2023",
			Volume:       "164",
			Pages:        "103596",
			DOI:          "10.1016/j.ijplas.2023.103596",
			URL:          "https://doi.org/10.1016/j.ijplas.2023.103596",
			Citations:    16,
			Type:         "Journal Article",
			Illustration: "/images/ta_void_2023.jpg",
		},
		{
			Title:        "The structure of liquid carbon elucidated by in situ X-ray diffraction",
			Authors:      "D Kraus, J Rips, M Schörner, MG Stevenson, J Vorberger, D Ranjan, S Galitskiy, et al.",
			Journal:      "Nature",
			Year:         "2025",
			Volume:       "637",
			Pages:        "1-5",
			DOI:          "10.1038/s41586-024-08303-2",
			URL:          "https://www.nature.com/articles/s41586-024-08303-2",
			Citations:    0,
			Type:         "Journal Article",
			Illustration: "/images/liquid_carbon_2025.jpg",
		},
	}
}

func researchInterests() []string {
	return []string{
		"Molecular Dynamics (MD)",
		"Shock Physics",
		"Ab-initio methods (DFT and beyond)",
		"Fusion Materials",
		"Machine Learning and Material Informatics",
		"Laser-Matter Interactions",
		"Atomic Scale Modeling",
		"Computational Materials Science",
		"Finite Element Methods (FEM)",
		"Scientific Code Development",
	}
}

func movies() []Movie {
	return []Movie{
		{
			Title:       "Laser Shock Loading of Aluminum",
			Description: "Molecular dynamics simulation showing spall failure in single-crystal aluminum under laser shock loading conditions",
			Thumbnail:   "/images/movie-placeholder.jpg",
			VideoURL:    "#",
			Duration:    "0:45",
			Type:        "MD Simulation",
		},
		{
			Title:       "Void Collapse in Tantalum",
			Description: "Atomistic visualization of shock-induced void collapse in single-crystal Ta systems at mesoscales",
			Thumbnail:   "/images/movie-placeholder.jpg",
			VideoURL:    "#",
			Duration:    "1:20",
			Type:        "MD Simulation",
		},
		{
			Title:       "Deformation Twinning in Magnesium",
			Description: "Real-time atomistic movie showing deformation twinning mechanisms in magnesium single crystals",
			Thumbnail:   "/images/movie-placeholder.jpg",
			VideoURL:    "#",
			Duration:    "0:55",
			Type:        "MD Simulation",
		},
	}
}

func repositories() []Repository {
	return []Repository{
		{
			Title:       "MD-TTM Hybrid Code",
			Description: "Two-Temperature Model implementation for laser-matter interaction simulations combining molecular dynamics with continuum methods",
			Language:    "C++/Fortran",
			Features:    []string{"MPI Parallelization", "GPU Acceleration", "Custom Potentials"},
			GithubURL:   "#",
			DownloadURL: "#",
		},
		{
			Title:       "Atomistic Analysis Tools",
			Description: "Python toolkit for post-processing molecular dynamics simulations and extracting material properties",
			Language:    "Python",
			Features:    []string{"Data Visualization", "Statistical Analysis", "Property Extraction"},
			GithubURL:   "#",
			DownloadURL: "#",
		},
		{
			Title:       "SNAP Potential Development",
			Description: "Machine learning framework for developing Spectral Neighbor Analysis Potentials for extreme conditions",
			Language:    "Python/C++",
			Features:    []string{"ML Integration", "LAMMPS Compatible", "High Accuracy"},
			GithubURL:   "#",
			DownloadURL: "#",
		},
	}
}

func lammpsWork() []LammpsWork {
	return []LammpsWork{
		{
			Title:        "Custom Interatomic Potentials",
			Description:  "Development of machine-learned interatomic potentials (MLIPs) including SNAP and ACE for materials under extreme conditions",
			Type:         "Potential Development",
			Applications: []string{"Shock Physics", "High Pressure", "Fusion Materials"},
		},
		{
			Title:        "Large-Scale MD Simulations",
			Description:  "Massively parallel molecular dynamics simulations on HPC clusters for studying material behavior at atomic scales",
			Type:         "Simulation Framework",
			Applications: []string{"Spall Failure", "Void Collapse", "Deformation Mechanisms"},
		},
		{
			Title:        "Hybrid MD-Continuum Methods",
			Description:  "Integration of LAMMPS with continuum methods for multi-scale modeling from atoms to mesoscales",
			Type:         "Multi-scale Modeling",
			Applications: []string{"Laser Processing", "Shock Loading", "Material Design"},
		},
	}
}

func mlWork() []MLWork {
	return []MLWork{
		{
			Title:       "SNAP MLIP",
			Description: "Spectral Neighbor Analysis Potential Machine-Learned Interatomic Potentials for simulating materials under extreme conditions with quantum-level accuracy",
			Accuracy:    "DFT-level",
			Methods:     []string{"Spectral Analysis", "Neighbor Descriptors", "Linear Regression"},
			Performance: "1000x faster than DFT",
		},
		{
			Title:       "NSF Track I: Sustainable Materials",
			Description: "Adaptive system for informatics-assisted polymer recycling using machine learning to optimize material recovery and processing workflows",
			Accuracy:    "Recycling optimization",
			Methods:     []string{"Adaptive Learning", "Material Informatics", "Process Optimization"},
			Performance: "Enhanced sustainability",
		},
		{
			Title:       "MLSI Models for Structure Identification",
			Description: "Machine Learning Structure Identification models for automated recognition and classification of atomic structures and defects in materials",
			Accuracy:    "Structure classification",
			Methods:     []string{"Deep Learning", "Computer Vision", "Pattern Recognition"},
			Performance: "Automated analysis",
		},
	}
}

// mdAnalysisCodes are the python analysis scripts shown under Work Samples.
func mdAnalysisCodes() []CodeSample {
	codes := pythonCodes()
	for i := range codes {
		codes[i].Language = "Python"
	}
	return codes
}

func contact() Contact {
	return Contact{
		Intro: "I'm always interested in discussing research opportunities, collaborations, and academic partnerships.",
		Info: []ContactInfo{
			{Label: "Email", Value: "sergeygalitskiy88@gmail.com", Href: "mailto:sergeygalitskiy88@gmail.com"},
			{Label: "Phone", Value: "(860) 709-8181", Href: "tel:+18607098181"},
			{Label: "Location", Value: "Tampa, FL, USA"},
		},
		Social: []Link{
			{Name: "Google Scholar", URL: scholarURL, Description: "View my research publications and citations"},
			{Name: "LinkedIn", URL: linkedInURL, Description: "Connect with me professionally"},
			{Name: "ORCID", URL: orcidURL, Description: "View my academic profile and verified works"},
		},
	}
}

func footer() Footer {
	return Footer{
		Tagline: "Research Scientist and Academic Leader dedicated to advancing knowledge through " +
			"innovative research and academic excellence.",
		QuickLinks: []Link{
			{Name: "About", URL: "#about"},
			{Name: "Experience", URL: "#experience"},
			{Name: "Publications", URL: "#publications"},
			{Name: "Contact", URL: "#contact"},
		},
		External: []Link{
			{Name: "Google Scholar", URL: scholarURL},
			{Name: "LinkedIn", URL: linkedInURL},
		},
		Documents: documents(),
	}
}
