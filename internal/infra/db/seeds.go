package db

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"stock-admin/internal/domain/entity"
)

//go:embed seeds/article_names.yaml
var sampleArticleNamesYAML []byte

type sampleFile struct {
	Articles []sampleArticle `yaml:"articles"`
}

type sampleArticle struct {
	Name        string `yaml:"name"`
	DefaultUnit string `yaml:"default_unit"`
	Description string `yaml:"description"`
}

// SampleArticleNames returns the embedded sample article names.
// A fresh slice is built on every call so callers may stamp ownership fields.
func SampleArticleNames() ([]*entity.ArticleName, error) {
	return parseSampleArticleNames(sampleArticleNamesYAML)
}

func parseSampleArticleNames(data []byte) ([]*entity.ArticleName, error) {
	var f sampleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode sample article names: %w", err)
	}

	out := make([]*entity.ArticleName, 0, len(f.Articles))
	for i, s := range f.Articles {
		unit, err := entity.ParseUnit(s.DefaultUnit)
		if err != nil {
			return nil, fmt.Errorf("sample article %d: %w", i, err)
		}
		an := &entity.ArticleName{
			Name:        strings.TrimSpace(s.Name),
			DefaultUnit: unit,
			Description: entity.OptionalText(s.Description),
			IsActive:    true,
		}
		if err := an.Validate(); err != nil {
			return nil, fmt.Errorf("sample article %d: %w", i, err)
		}
		out = append(out, an)
	}
	return out, nil
}
