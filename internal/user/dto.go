package user

// SitePermissionDTO references a site together with the permission names the
// user should hold on it.
type SitePermissionDTO struct {
	SiteID      string   `json:"site_id"`
	Permissions []string `json:"permissions"`
}

type CreateUserDTO struct {
	Username string              `json:"username"`
	Password string              `json:"password"`
	FullName string              `json:"full_name"`
	Sites    []SitePermissionDTO `json:"sites"`
}

type UpdateUserDTO struct {
	FullName string              `json:"full_name"`
	Sites    []SitePermissionDTO `json:"sites"`
}

type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d CreateUserDTO) Validate() error {
	if d.Username == "" {
		return ValidationError{Msg: "username is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	for _, s := range d.Sites {
		if s.SiteID == "" {
			return ValidationError{Msg: "site_id is required for each site entry"}
		}
	}
	return nil
}

func (d UpdateUserDTO) Validate() error {
	for _, s := range d.Sites {
		if s.SiteID == "" {
			return ValidationError{Msg: "site_id is required for each site entry"}
		}
	}
	return nil
}

func (d LoginDTO) Validate() error {
	if d.Username == "" {
		return ValidationError{Msg: "username is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	return nil
}
