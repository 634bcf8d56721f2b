package puzzle

import (
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const gridSchema = `{
  "type": "object",
  "required": ["width", "height", "cells"],
  "properties": {
    "width":  {"type": "integer", "minimum": 1},
    "height": {"type": "integer", "minimum": 1},
    "cells":  {"type": "array", "items": {"type": "integer", "minimum": 0, "maximum": 10}}
  }
}`

const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["version", "dimensions", "pieces", "connections", "pages", "displays", "solution"],
  "properties": {
    "version": {"const": 1},
    "id": {"type": "string"},
    "seed": {"type": "integer", "minimum": 0},
    "dimensions": {
      "type": "object",
      "required": ["width", "depth", "height"],
      "properties": {
        "width":  {"type": "integer", "minimum": 1},
        "depth":  {"type": "integer", "minimum": 1},
        "height": {"type": "integer", "minimum": 1}
      }
    },
    "pieces":   {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/piece"}},
    "unplaced": {"type": "array", "items": {"$ref": "#/definitions/piece"}},
    "connections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["top", "bottom"],
        "properties": {"top": {"type": "integer"}, "bottom": {"type": "integer"}}
      }
    },
    "pages": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["index", "top", "bottom", "rotation", "grid", "base"],
        "properties": {
          "index": {"type": "integer", "minimum": 1},
          "rotation": {"$ref": "#/definitions/rotation"},
          "grid": {"$ref": "grid.json"},
          "base": {"$ref": "grid.json"}
        }
      }
    },
    "displays": {"type": "array", "items": {"$ref": "grid.json"}},
    "solution": {
      "type": "object",
      "required": ["face", "rotation", "grid"],
      "properties": {
        "face": {"enum": ["top", "bottom"]},
        "rotation": {"$ref": "#/definitions/rotation"},
        "grid": {"$ref": "grid.json"}
      }
    }
  },
  "definitions": {
    "rotation": {"enum": ["0", "90", "180", "270"]},
    "piece": {
      "type": "object",
      "required": ["id", "width", "depth", "color", "facing"],
      "properties": {
        "id":     {"type": "integer", "minimum": 0},
        "width":  {"type": "integer", "minimum": 1},
        "depth":  {"type": "integer", "minimum": 1},
        "color":  {"type": "integer", "minimum": 0, "maximum": 9},
        "facing": {"enum": ["north", "west", "south", "east"]},
        "position": {
          "type": "object",
          "required": ["x", "y", "z"],
          "properties": {"x": {"type": "integer"}, "y": {"type": "integer"}, "z": {"type": "integer"}}
        }
      }
    }
  }
}`

const (
	documentURL = "https://brickstack.dev/schema/document.json"
	gridURL     = "https://brickstack.dev/schema/grid.json"
)

type schemas struct {
	document *jsonschema.Schema
	grid     *jsonschema.Schema
}

var loadSchemas = sync.OnceValues(func() (schemas, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft7
	if err := c.AddResource(gridURL, strings.NewReader(gridSchema)); err != nil {
		return schemas{}, err
	}
	if err := c.AddResource(documentURL, strings.NewReader(documentSchema)); err != nil {
		return schemas{}, err
	}
	doc, err := c.Compile(documentURL)
	if err != nil {
		return schemas{}, err
	}
	g, err := c.Compile(gridURL)
	if err != nil {
		return schemas{}, err
	}
	return schemas{document: doc, grid: g}, nil
})
