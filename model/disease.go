package model

// Disease is a diagnosed condition record derived from analyzed documents.
// Records are deactivated (is_active flips to false) but never deleted.
type Disease struct {
	ID            string `json:"id"`
	DiseaseCode   string `json:"disease_code"`
	DiseaseName   string `json:"disease_name"`
	FirstDetected string `json:"first_detected"`
	LastDetected  string `json:"last_detected"`
	IsActive      bool   `json:"is_active"`
}

// DiseaseHistory is the client's transient copy of the disease list.
type DiseaseHistory []Disease

// Active returns records still marked active, preserving order.
func (h DiseaseHistory) Active() []Disease {
	var out []Disease
	for _, d := range h {
		if d.IsActive {
			out = append(out, d)
		}
	}
	return out
}

// Inactive returns deactivated records, preserving order.
func (h DiseaseHistory) Inactive() []Disease {
	var out []Disease
	for _, d := range h {
		if !d.IsActive {
			out = append(out, d)
		}
	}
	return out
}
