package site

// CreateSiteDTO is the transport shape for registering a site.
type CreateSiteDTO struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d CreateSiteDTO) Validate() error {
	if d.Name == "" {
		return ValidationError{Msg: "name is required"}
	}
	return nil
}
