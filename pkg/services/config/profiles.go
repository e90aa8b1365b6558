package config

import (
	"context"
	"fmt"

	"github.com/de-tools/timelog-reporter/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Registry reads named input profiles from an ini file such as ~/.timelogcfg:
//
//	[team-a]
//	source = /exports/team-a.csv
//	output = /reports/team-a.xlsx
type Registry interface {
	GetProfiles(ctx context.Context) ([]domain.Profile, error)
	GetProfile(ctx context.Context, name string) (domain.Profile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]domain.Profile, error) {
	var profiles []domain.Profile
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, profileFromSection(section))
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (domain.Profile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("profile %s not found", name)
	}

	profile := profileFromSection(section)
	if profile.Source == "" {
		return domain.Profile{}, fmt.Errorf("profile %s has no source", name)
	}
	return profile, nil
}

func profileFromSection(section *ini.Section) domain.Profile {
	return domain.Profile{
		Name:   section.Name(),
		Source: section.Key("source").String(),
		Output: section.Key("output").String(),
	}
}
