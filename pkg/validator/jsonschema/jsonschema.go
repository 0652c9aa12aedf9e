/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jsonschema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"
	"github.com/xeipuuv/gojsonschema"

	"github.com/trustbloc/wallet-trust/internal/logfields"
)

var logger = log.New("jsonschema")

var errMissingID = errors.New("field '$id' not found in JSON schema")

type compileFunc func(schema []byte) (*gojsonschema.Schema, error)

// CachingValidator validates JSON documents against schemas that are compiled once per schema ID.
type CachingValidator struct {
	mutex   sync.RWMutex
	cache   map[string]*gojsonschema.Schema
	compile compileFunc
}

func NewCachingValidator() *CachingValidator {
	return &CachingValidator{
		cache:   make(map[string]*gojsonschema.Schema),
		compile: compile,
	}
}

// Validate checks the raw JSON document against schema. The schema must declare schemaID as its "$id".
func (c *CachingValidator) Validate(doc []byte, schemaID string, schema []byte) error {
	s, err := c.get(schemaID, schema)
	if err != nil {
		return fmt.Errorf("get schema validator from cache: %w", err)
	}

	result, err := s.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	if !result.Valid() {
		return &ValidationError{errs: result.Errors()}
	}

	return nil
}

func (c *CachingValidator) get(schemaID string, schema []byte) (*gojsonschema.Schema, error) {
	c.mutex.RLock()
	s, ok := c.cache[schemaID]
	c.mutex.RUnlock()

	if ok {
		return s, nil
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if s, ok = c.cache[schemaID]; ok {
		return s, nil
	}

	var header struct {
		ID *string `json:"$id"`
	}

	if err := json.Unmarshal(schema, &header); err != nil {
		return nil, fmt.Errorf("unmarshal JSON schema: %w", err)
	}

	if header.ID == nil {
		return nil, errMissingID
	}

	if *header.ID != schemaID {
		return nil, fmt.Errorf("the value of field '$id' in JSON schema [%s] does not match schema ID [%s]",
			*header.ID, schemaID)
	}

	s, err := c.compile(schema)
	if err != nil {
		return nil, fmt.Errorf("create validator [%s]: %w", schemaID, err)
	}

	c.cache[schemaID] = s

	logger.Debug("Compiled JSON schema", logfields.WithJSONSchemaID(schemaID))

	return s, nil
}

func compile(schema []byte) (*gojsonschema.Schema, error) {
	s, err := gojsonschema.NewSchemaLoader().Compile(gojsonschema.NewBytesLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("compile JSON schema: %w", err)
	}

	return s, nil
}

// ValidationError lists the schema violations of a document.
type ValidationError struct {
	errs []gojsonschema.ResultError
}

func (e *ValidationError) Error() string {
	msgs := lo.Map(e.errs, func(re gojsonschema.ResultError, _ int) string {
		return re.String()
	})

	return fmt.Sprintf("validation error: [%s]", strings.Join(msgs, "; "))
}

// Fields returns the distinct document paths that failed validation, in order of appearance.
func (e *ValidationError) Fields() []string {
	return lo.Uniq(lo.Map(e.errs, func(re gojsonschema.ResultError, _ int) string {
		return re.Field()
	}))
}
