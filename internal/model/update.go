package model

// ServerUpdate is a partial update for a server record. Nil fields are left
// untouched; set fields are applied as-is, including empty values. This is the
// explicit replacement for ad-hoc keyword updates: presence is modeled, not
// guessed from zero values.
type ServerUpdate struct {
	Name     *string
	URL      *string
	Type     *ServerType
	Cmd      *string
	CmdArgs  *[]string
	IconType *IconType
	Subtitle *string
}

// Apply writes the set fields of the update onto the server.
func (u ServerUpdate) Apply(s *Server) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.URL != nil {
		s.URL = *u.URL
	}
	if u.Type != nil {
		s.Type = *u.Type
	}
	if u.Cmd != nil {
		s.Cmd = *u.Cmd
	}
	if u.CmdArgs != nil {
		s.CmdArgs = *u.CmdArgs
	}
	if u.IconType != nil {
		s.IconType = *u.IconType
	}
	if u.Subtitle != nil {
		s.Subtitle = *u.Subtitle
	}
}

// SourceUpdate is the partial-update record for sources.
type SourceUpdate struct {
	Name     *string
	Path     *string
	IconType *IconType
}

// Apply writes the set fields of the update onto the source.
func (u SourceUpdate) Apply(s *Source) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Path != nil {
		s.Path = *u.Path
	}
	if u.IconType != nil {
		s.IconType = *u.IconType
	}
}
