package model

import "time"

// SeedJobs returns the job postings loaded on every start. Jobs are
// not persisted, so this is the job collection each session begins
// with.
func SeedJobs() []Job {
	return []Job{
		{
			ID:         "job-1",
			Title:      Bilingual("Senior Frontend Engineer", "Ingeniero/a Frontend Senior"),
			Department: Bilingual("Technology", "Tecnología"),
			Location:   Bilingual("Remote", "Remoto"),
			Salary:     "$120,000 - $160,000",
			Description: Bilingual(
				"We are looking for an experienced Frontend Engineer to build and maintain our cutting-edge web applications using React and modern web technologies.",
				"Buscamos un/a Ingeniero/a Frontend experimentado/a para construir y mantener nuestras aplicaciones web de vanguardia usando React y tecnologías modernas.",
			),
			Requirements: []LocalizedText{
				Bilingual("5+ years of React experience", "Más de 5 años de experiencia en React"),
				Bilingual("Expertise in TypeScript", "Dominio de TypeScript"),
				Bilingual("Strong understanding of UI/UX principles", "Sólido entendimiento de principios de UI/UX"),
				Bilingual("Experience with Tailwind CSS", "Experiencia con Tailwind CSS"),
			},
			Status: JobStatusOpen,
		},
		{
			ID:         "job-2",
			Title:      Bilingual("UX/UI Designer", "Diseñador/a UX/UI"),
			Department: Bilingual("Design", "Diseño"),
			Location:   Bilingual("Rosario, Santa Fe", "Rosario, Santa Fe"),
			Salary:     "$90,000 - $110,000",
			Description: Bilingual(
				"Seeking a creative UX/UI designer to create intuitive and visually appealing user interfaces for our product suite.",
				"Buscamos un/a diseñador/a UX/UI creativo/a para crear interfaces de usuario intuitivas y atractivas para nuestra suite de productos.",
			),
			Requirements: []LocalizedText{
				Bilingual("Portfolio of design projects", "Portafolio de proyectos de diseño"),
				Bilingual("Proficiency in Figma or Sketch", "Dominio de Figma o Sketch"),
				Bilingual("Experience with user research", "Experiencia en investigación de usuarios"),
				Bilingual("Strong communication skills", "Excelentes habilidades de comunicación"),
			},
			Status: JobStatusClosed,
		},
		{
			ID:         "job-3",
			Title:      Bilingual("Product Manager", "Gerente de Producto"),
			Department: Bilingual("Product", "Producto"),
			Location:   Bilingual("Rosario, Santa Fe", "Rosario, Santa Fe"),
			Salary:     "$130,000 - $170,000",
			Description: Bilingual(
				"Join our product team to define the future of our platform. You will be responsible for the product planning and execution throughout the Product Lifecycle.",
				"Únete a nuestro equipo de producto para definir el futuro de nuestra plataforma. Serás responsable de la planificación y ejecución del producto durante todo su ciclo de vida.",
			),
			Requirements: []LocalizedText{
				Bilingual("3+ years in Product Management", "Más de 3 años en gestión de productos"),
				Bilingual("Experience with Agile methodologies", "Experiencia con metodologías ágiles"),
				Bilingual("Excellent analytical skills", "Excelentes habilidades analíticas"),
				Bilingual("BSc in Computer Science or related field", "Licenciatura en Informática o campo relacionado"),
			},
			Status: JobStatusOpen,
		},
	}
}

// SeedCandidates returns the candidate collection used when durable
// storage is empty, unreadable, or fails the shape check.
func SeedCandidates() []Candidate {
	interview1 := time.Date(2024, 8, 5, 14, 0, 0, 0, time.UTC)
	interview3 := time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC)

	return []Candidate{
		{
			ID:          "cand-1",
			JobID:       "job-1",
			Status:      StatusInterview,
			AppliedDate: time.Date(2024, 7, 20, 10, 0, 0, 0, time.UTC),
			CVText: Bilingual(
				"Vanesa Valtorta is a skilled frontend developer with 7 years of experience in React and Vue.",
				"Vanesa Valtorta es una desarrolladora frontend con 7 años de experiencia en React y Vue.",
			),
			ParsedData: ParsedProfile{
				Name:   "Vanesa Valtorta",
				Email:  "vanesaval@gmail.com",
				Phone:  "123-456-7890",
				DNI:    "34.567.890-V",
				Gender: "Female",
				Summary: Bilingual(
					"Senior Frontend Engineer with 7 years of experience specializing in React, TypeScript, and performance optimization. Proven track record of leading teams and delivering high-quality, scalable web applications.",
					"Ingeniera Frontend Senior con 7 años de experiencia especializada en React, TypeScript y optimización de rendimiento. Historial comprobado liderando equipos y entregando aplicaciones web escalables y de alta calidad.",
				),
				Experience: []Experience{{
					Title:    Bilingual("Lead Frontend Developer", "Desarrolladora Frontend Líder"),
					Company:  "TechCorp",
					Duration: Bilingual("2020-Present", "2020-Actualidad"),
					Description: Bilingual(
						"Led development of a major e-commerce platform.",
						"Lideró el desarrollo de una importante plataforma de comercio electrónico.",
					),
				}},
				Education: []Education{{
					Institution: "State University",
					Degree:      Bilingual("B.S. in Computer Science", "Licenciatura en Ciencias de la Computación"),
					Year:        "2017",
				}},
				Skills: []string{"React", "TypeScript", "Next.js", "GraphQL", "Tailwind CSS", "Webpack"},
			},
			MatchAnalysis: &MatchAnalysis{
				Score: 92,
				Summary: Bilingual(
					"Excellent fit. Vanesa has extensive experience with the core technologies required for this role and has leadership experience. Her skills align perfectly with the job requirements.",
					"Excelente candidata. Vanesa tiene amplia experiencia con las tecnologías clave requeridas para este puesto y experiencia en liderazgo. Sus habilidades se alinean perfectamente con los requisitos del puesto.",
				),
				Strengths: []LocalizedText{
					Bilingual("Strong React & TypeScript skills", "Sólidas habilidades en React y TypeScript"),
					Bilingual("Leadership experience", "Experiencia en liderazgo"),
					Bilingual("Familiarity with modern tooling", "Familiaridad con herramientas modernas"),
				},
				Weaknesses: []LocalizedText{
					Bilingual("No specific mention of mobile development experience.", "No se menciona experiencia específica en desarrollo móvil."),
				},
			},
			Notes: []Note{
				Bilingual("Great technical screening. Strong communicator.", "Gran evaluación técnica. Excelente comunicadora."),
				Bilingual("Scheduled for final round interview.", "Entrevista final programada."),
			},
			InterviewDate: &interview1,
		},
		{
			ID:          "cand-2",
			JobID:       "job-1",
			Status:      StatusReviewing,
			AppliedDate: time.Date(2024, 7, 22, 11, 30, 0, 0, time.UTC),
			CVText: Bilingual(
				"Iñaki Maidagan is a junior developer with 2 years of experience working with React.",
				"Iñaki Maidagan es un desarrollador junior con 2 años de experiencia trabajando con React.",
			),
			ParsedData: ParsedProfile{
				Name:   "Iñaki Maidagan",
				Email:  "akimaidagan@gmail.com",
				Phone:  "234-567-8901",
				DNI:    "23.456.789-I",
				Gender: "Male",
				Summary: Bilingual(
					"Enthusiastic frontend developer with 2 years of professional experience using React and Redux. Eager to grow and contribute to a fast-paced team.",
					"Desarrollador frontend entusiasta con 2 años de experiencia profesional usando React y Redux. Deseoso de crecer y contribuir en un equipo dinámico.",
				),
				Experience: []Experience{{
					Title:    Bilingual("Junior Developer", "Desarrollador Junior"),
					Company:  "WebStart",
					Duration: Bilingual("2022-Present", "2022-Actualidad"),
					Description: Bilingual(
						"Contributed to building client-facing dashboards.",
						"Contribuyó en la construcción de paneles para clientes.",
					),
				}},
				Education: []Education{{
					Institution: "Community College",
					Degree:      Bilingual("Associate in Web Development", "Técnico en Desarrollo Web"),
					Year:        "2022",
				}},
				Skills: []string{"React", "JavaScript", "Redux", "CSS", "HTML"},
			},
			MatchAnalysis: &MatchAnalysis{
				Score: 65,
				Summary: Bilingual(
					"Potential fit, but lacks the senior-level experience required. Iñaki has a good foundation in React but does not meet the 5+ years requirement. Could be considered for a more junior role.",
					"Candidato potencial, pero le falta la experiencia de nivel senior requerida. Iñaki tiene una buena base en React pero no cumple con el requisito de más de 5 años. Podría considerarse para un puesto más junior.",
				),
				Strengths: []LocalizedText{
					Bilingual("Solid React fundamentals", "Fundamentos sólidos de React"),
					Bilingual("Eagerness to learn", "Ganas de aprender"),
				},
				Weaknesses: []LocalizedText{
					Bilingual("Lacks required years of experience", "Le faltan los años de experiencia requeridos"),
					Bilingual("No TypeScript listed", "No menciona TypeScript"),
					Bilingual("No leadership experience", "Sin experiencia en liderazgo"),
				},
			},
			Notes: []Note{
				Bilingual("Promising but not a fit for the senior role.", "Prometedor pero no encaja para el puesto senior."),
			},
		},
		{
			ID:          "cand-3",
			JobID:       "job-2",
			Status:      StatusFinalist,
			AppliedDate: time.Date(2024, 7, 19, 9, 0, 0, 0, time.UTC),
			CVText: Bilingual(
				"Carolina Martinez is a creative UI/UX designer with 4 years of experience.",
				"Carolina Martinez es una creativa diseñadora UX/UI con 4 años de experiencia.",
			),
			ParsedData: ParsedProfile{
				Name:   "Carolina Martinez",
				Email:  "carol.m@gmail.com",
				Phone:  "345-678-9012",
				DNI:    "45.678.901-C",
				Gender: "Female",
				Summary: Bilingual(
					"A user-centric UX/UI Designer with 4 years of experience in creating beautiful and functional digital products. Passionate about solving complex problems through design thinking.",
					"Diseñadora UX/UI centrada en el usuario con 4 años de experiencia creando productos digitales bellos y funcionales. Apasionada por resolver problemas complejos mediante el design thinking.",
				),
				Experience: []Experience{{
					Title:    Bilingual("UX/UI Designer", "Diseñadora UX/UI"),
					Company:  "DesignCo",
					Duration: Bilingual("2020-Present", "2020-Actualidad"),
					Description: Bilingual(
						"Designed mobile and web apps from concept to launch.",
						"Diseñó aplicaciones móviles y web desde el concepto hasta el lanzamiento.",
					),
				}},
				Education: []Education{{
					Institution: "Design Institute",
					Degree:      Bilingual("BFA in Graphic Design", "Licenciatura en Diseño Gráfico"),
					Year:        "2020",
				}},
				Skills: []string{"Figma", "Adobe XD", "Sketch", "User Research", "Prototyping", "Wireframing"},
			},
			MatchAnalysis: &MatchAnalysis{
				Score: 88,
				Summary: Bilingual(
					"Strong candidate for the UX/UI role. Carolina has a solid portfolio and proficiency in all the required tools. Her experience in user research is a significant plus.",
					"Candidata fuerte para el puesto de UX/UI. Carolina tiene un portafolio sólido y dominio de todas las herramientas requeridas. Su experiencia en investigación de usuarios es un gran plus.",
				),
				Strengths: []LocalizedText{
					Bilingual("Proficient in Figma", "Dominio de Figma"),
					Bilingual("Strong portfolio", "Portafolio sólido"),
					Bilingual("Experience in user research and prototyping", "Experiencia en investigación de usuarios y prototipado"),
				},
				Weaknesses: []LocalizedText{
					Bilingual(
						"Slightly less experience than some other candidates, but makes up for it in quality of work.",
						"Un poco menos de experiencia que otros candidatos, pero lo compensa con la calidad de su trabajo.",
					),
				},
			},
			Notes: []Note{
				Bilingual("Portfolio is impressive.", "El portafolio es impresionante."),
				Bilingual("Positive feedback from the design team.", "Comentarios positivos del equipo de diseño."),
			},
			InterviewDate: &interview3,
		},
		{
			ID:          "cand-4",
			JobID:       "job-3",
			Status:      StatusApplied,
			AppliedDate: time.Date(2024, 7, 23, 15, 0, 0, 0, time.UTC),
			CVText: Bilingual(
				"Juan Perez is a product manager with 6 years of experience in SaaS products.",
				"Juan Pérez es un gerente de producto con 6 años de experiencia en productos SaaS.",
			),
			ParsedData: ParsedProfile{
				Name:   "Juan Pérez García",
				Email:  "juan.perez@email.com",
				Phone:  "+34 612 345 678",
				DNI:    "12.345.678-A",
				Gender: "Male",
				Summary: Bilingual(
					"Product Manager with 6 years of experience in the full product lifecycle, from ideation to launch and optimization. Proven ability to translate customer needs into clear product requirements and lead cross-functional teams.",
					"Gerente de Producto con 6 años de experiencia en el ciclo de vida completo del producto, desde la ideación hasta el lanzamiento y la optimización. Habilidad demostrada para traducir las necesidades del cliente en requisitos de producto claros y liderar equipos multifuncionales.",
				),
				Experience: []Experience{{
					Title:    Bilingual("Senior Product Manager", "Gerente de Producto Senior"),
					Company:  "Tech Solutions S.L.",
					Duration: Bilingual("2022-Present", "2022-Actualidad"),
					Description: Bilingual(
						"Led product strategy for SaaS platform, increasing retention by 25%.",
						"Lideró la estrategia de producto para plataforma SaaS, aumentando la retención en un 25%.",
					),
				}},
				Education: []Education{{
					Institution: "Business School",
					Degree:      Bilingual("MBA", "MBA"),
					Year:        "2018",
				}},
				Skills: []string{"Product Strategy", "Roadmapping", "Agile", "Jira", "Figma", "Analytics"},
			},
			MatchAnalysis: &MatchAnalysis{
				Score: 95,
				Summary: Bilingual(
					"Outstanding candidate for Product Manager. Juan's extensive experience in SaaS products and leadership skills make him an ideal fit. His strong analytical background is a significant asset.",
					"Candidato sobresaliente para Gerente de Producto. La amplia experiencia de Juan en productos SaaS y sus habilidades de liderazgo lo convierten en un candidato ideal. Su sólida formación analítica es un activo importante.",
				),
				Strengths: []LocalizedText{
					Bilingual("Extensive SaaS product experience", "Amplia experiencia en productos SaaS"),
					Bilingual("Strong leadership and strategic thinking", "Fuerte liderazgo y pensamiento estratégico"),
					Bilingual("Proficiency in product management tools", "Dominio de herramientas de gestión de producto"),
				},
				Weaknesses: []LocalizedText{
					Bilingual("No specific mention of mobile app product management.", "No se menciona gestión de productos de aplicaciones móviles específicamente."),
				},
			},
			Notes: []Note{},
		},
		{
			ID:          "cand-5",
			JobID:       "job-3",
			Status:      StatusReviewing,
			AppliedDate: time.Date(2024, 7, 24, 9, 30, 0, 0, time.UTC),
			CVText: Bilingual(
				"Carlos Gomez is a product professional with 7 years of experience in B2B solutions.",
				"Carlos Gómez es un profesional de producto con 7 años de experiencia en soluciones B2B.",
			),
			ParsedData: ParsedProfile{
				Name:   "Carlos Alberto Gómez Ruiz",
				Email:  "carlos.gomez@email.com",
				Phone:  "+34 600 987 654",
				DNI:    "98.765.432-B",
				Gender: "Male",
				Summary: Bilingual(
					"Product professional with 7 years of experience in developing and launching digital products, specializing in B2B solutions and data platforms. Expert in defining product vision and managing backlogs.",
					"Profesional de producto con 7 años de experiencia en el desarrollo y lanzamiento de productos digitales, especializándose en soluciones B2B y plataformas de datos. Experto en la definición de visión de producto y gestión de backlogs.",
				),
				Experience: []Experience{{
					Title:    Bilingual("Product Director", "Director de Producto"),
					Company:  "Data Solutions Corp.",
					Duration: Bilingual("2021-Present", "2021-Actualidad"),
					Description: Bilingual(
						"Defined product strategy for B2B data analytics suite, achieving 30% growth.",
						"Definió la estrategia de producto para suite de análisis de datos B2B, logrando un crecimiento del 30%.",
					),
				}},
				Education: []Education{{
					Institution: "EOI Business School",
					Degree:      Bilingual("Master in Big Data & Business Analytics", "Máster en Big Data & Business Analytics"),
					Year:        "2017",
				}},
				Skills: []string{"Product Strategy", "B2B SaaS", "Data Platforms", "Agile", "Jira", "Tableau"},
			},
			MatchAnalysis: &MatchAnalysis{
				Score: 90,
				Summary: Bilingual(
					"Highly skilled Product Manager with strong background in B2B and data products. Carlos's experience in leading product strategy and managing teams is a great asset. His data analytics background is a plus.",
					"Gerente de Producto altamente cualificado con sólida experiencia en productos B2B y de datos. La experiencia de Carlos liderando la estrategia de producto y gestionando equipos es un gran activo. Su formación en análisis de datos es un plus.",
				),
				Strengths: []LocalizedText{
					Bilingual("Expertise in B2B and data products", "Experiencia en productos B2B y de datos"),
					Bilingual("Experience leading product strategy", "Experiencia liderando estrategia de producto"),
					Bilingual("Strong analytical background", "Sólida formación analítica"),
				},
				Weaknesses: []LocalizedText{
					Bilingual("Less direct experience with consumer-facing products.", "Menos experiencia directa con productos orientados al consumidor."),
				},
			},
			Notes: []Note{},
		},
	}
}
