package render

import (
	"io"
	"iter"
	"slices"

	"github.com/specialistvlad/courseadvisor/internal/catalog"
	"github.com/specialistvlad/courseadvisor/internal/course"
	"gopkg.in/yaml.v3"
)

type yamlRenderer struct{}

type notFoundDoc struct {
	Code  string `yaml:"code"`
	Found bool   `yaml:"found"`
}

func encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (yamlRenderer) Result(w io.Writer, res catalog.Result) error {
	return encode(w, res)
}

func (yamlRenderer) List(w io.Writer, courses iter.Seq[course.Course]) error {
	list := slices.Collect(courses)
	if list == nil {
		list = []course.Course{}
	}
	return encode(w, list)
}

func (yamlRenderer) Describe(w io.Writer, d catalog.Description) error {
	return encode(w, d)
}

func (yamlRenderer) NotFound(w io.Writer, code string) error {
	return encode(w, notFoundDoc{Code: code})
}
