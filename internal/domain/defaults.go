package domain

// DefaultIncidents returns the seed collection written on first run.
// Each call returns a fresh slice.
func DefaultIncidents() []Incident {
	return []Incident{
		{
			ID:           1,
			Title:        "Fuga de agua en baño planta 2",
			Residence:    "Residencia Sol Radiante",
			Status:       StatusPending,
			Priority:     PriorityHigh,
			AssignedTo:   "Carlos Pérez",
			ReportedDate: MustDate("2025-06-18"),
			Description:  "Fuga constante en el grifo del lavabo. Requiere atención urgente.",
		},
		{
			ID:           2,
			Title:        "Luz parpadeante pasillo principal",
			Residence:    "Edificio El Roble",
			Status:       StatusProgress,
			Priority:     PriorityMedium,
			AssignedTo:   "Ana Gómez",
			ReportedDate: MustDate("2025-06-17"),
			Description:  "La luz del pasillo principal parpadea intermitentemente.",
		},
		{
			ID:           3,
			Title:        "Caldera no enciende",
			Residence:    "Apartamentos La Sierra",
			Status:       StatusCompleted,
			Priority:     PriorityHigh,
			AssignedTo:   "Luis Rodríguez",
			ReportedDate: MustDate("2025-06-15"),
			Description:  "La caldera central del edificio no funciona. Revisada y reparada.",
		},
	}
}

// DefaultTasks returns the seed task collection.
func DefaultTasks() []Task {
	return []Task{
		{
			ID:         1,
			Title:      "Revisar sistema de riego jardín",
			Type:       TaskMaintenance,
			Priority:   PriorityLow,
			AssignedTo: "Laura Martín",
			DueDate:    MustDate("2025-06-25"),
			Status:     StatusPending,
			Details:    "Inspección programada del sistema de riego automático.",
		},
		{
			ID:         2,
			Title:      "Pintar pared dañada habitación 101",
			Type:       TaskRepair,
			Priority:   PriorityMedium,
			AssignedTo: "Jorge Sanz",
			DueDate:    MustDate("2025-06-22"),
			Status:     StatusProgress,
			Details:    "Reparar y pintar la pared afectada por humedad en la habitación 101.",
		},
	}
}

// DefaultCleaningJobs returns the seed cleaning collection.
func DefaultCleaningJobs() []CleaningJob {
	return []CleaningJob{
		{
			ID:           1,
			Area:         "Recepción y zonas comunes",
			Type:         CleaningDaily,
			Responsible:  "Equipo Limpieza A",
			LastCleaned:  MustDate("2025-06-19"),
			NextCleanDue: MustDate("2025-06-20"),
			Status:       StatusPending,
		},
		{
			ID:           2,
			Area:         "Gimnasio y vestuarios",
			Type:         CleaningDeep,
			Responsible:  "Equipo Limpieza B",
			LastCleaned:  MustDate("2025-06-15"),
			NextCleanDue: MustDate("2025-06-22"),
			Status:       StatusCompleted,
		},
	}
}
