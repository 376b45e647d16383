package picker

import (
	"io"

	"github.com/sirupsen/logrus"
)

type testObject struct {
	id       string
	kind     string
	name     string
	template bool
}

func (o testObject) ID() string       { return o.id }
func (o testObject) Kind() string     { return o.kind }
func (o testObject) Name() string     { return o.name }
func (o testObject) IsTemplate() bool { return o.template }

func obj(id, kind, name string) Object {
	return testObject{id: id, kind: kind, name: name}
}

func quietLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func sources(objects ...Object) Source {
	return SourceFunc(func() ([]Object, error) {
		return objects, nil
	})
}

func fiveViews() []Object {
	return []Object{
		obj("1", "Section", "Stair A"),
		obj("2", "Plan", "Level 1"),
		obj("3", "Plan", "Level 2"),
		obj("4", "Elevation", "North"),
		obj("5", "Section", "Stair B"),
	}
}
