package i18n

import (
	"io/fs"
	"path"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v2"
)

type yamlDictionary struct {
	Entries  map[string]string
	fallback *yamlDictionary
}

func (d *yamlDictionary) Lookup(key string) (data string, ok bool) {
	if value, ok := d.Entries[key]; ok {
		// \x02 is ASCII code for hex 02, which is STX (start of text)
		return "\x02" + value, true
	}
	if d.fallback != nil {
		return d.fallback.Lookup(key)
	}
	return "", false
}

// newCatalogFromFolder reads every <code>.yaml file in dir. Keys missing from
// a translation resolve through the fallback language's file.
func newCatalogFromFolder(dir fs.FS, fallbackLang string) (catalog.Catalog, []language.Tag, error) {
	files, err := fs.ReadDir(dir, ".")
	if err != nil {
		return nil, nil, err
	}
	translations := map[string]*yamlDictionary{}
	for _, file := range files {
		if file.IsDir() || path.Ext(file.Name()) != ".yaml" {
			continue
		}
		yamlFile, err := fs.ReadFile(dir, file.Name())
		if err != nil {
			return nil, nil, err
		}
		dict, err := parseYAMLDict(yamlFile)
		if err != nil {
			return nil, nil, err
		}
		translations[strings.TrimSuffix(file.Name(), ".yaml")] = dict
	}

	base, ok := translations[fallbackLang]
	if !ok {
		return nil, nil, fs.ErrNotExist
	}
	dictionaries := map[string]catalog.Dictionary{}
	tags := []language.Tag{language.MustParse(fallbackLang)}
	for lang, dict := range translations {
		if lang != fallbackLang {
			dict.fallback = base
			tags = append(tags, language.MustParse(lang))
		}
		dictionaries[lang] = dict
	}

	cat, err := catalog.NewFromMap(dictionaries, catalog.Fallback(tags[0]))
	if err != nil {
		return nil, nil, err
	}
	return cat, tags, nil
}

func parseYAMLDict(file []byte) (*yamlDictionary, error) {
	data := map[string]string{}
	err := yaml.Unmarshal(file, &data)
	if err != nil {
		return nil, err
	}
	return &yamlDictionary{Entries: data}, nil
}
