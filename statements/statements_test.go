package statements_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathanwoahn/xapi-types/activities"
	"github.com/jonathanwoahn/xapi-types/actors"
	"github.com/jonathanwoahn/xapi-types/attachments"
	"github.com/jonathanwoahn/xapi-types/internal/utils/pointer"
	"github.com/jonathanwoahn/xapi-types/misc/langmap"
	"github.com/jonathanwoahn/xapi-types/misc/rfctime"
	"github.com/jonathanwoahn/xapi-types/objects"
	"github.com/jonathanwoahn/xapi-types/results"
	"github.com/jonathanwoahn/xapi-types/statements"
	"github.com/jonathanwoahn/xapi-types/verbs"
	"github.com/muhammadmuzzammil1998/jsonc"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

const schemaURL = "mem://schemas/statement.schema.json"

func compileSchema(t *testing.T) *jsonschema.Schema {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", "statement.schema.json"))
	if err != nil {
		t.Fatal(err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode schema: %v", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		t.Fatalf("register schema: %v", err)
	}
	schema, err := c.Compile(schemaURL)
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}
	return schema
}

func conform(schema *jsonschema.Schema, b []byte) error {
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return err
	}
	return schema.Validate(instance)
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", "statements", name))
	if err != nil {
		t.Fatal(err)
	}
	return jsonc.ToJSON(b)
}

func TestFixtures(t *testing.T) {
	schema := compileSchema(t)

	theory := func(name string, then func(*testing.T, statements.Statement)) func(*testing.T) {
		return func(t *testing.T) {
			testee := statements.Statement{}
			if err := json.Unmarshal(readFixture(t, name), &testee); err != nil {
				t.Fatal(err)
			}

			then(t, testee)

			marshalled, err := json.Marshal(testee)
			if err != nil {
				t.Fatal(err)
			}
			if err := conform(schema, marshalled); err != nil {
				t.Errorf("marshalled statement does not conform the schema: %v\n%s", err, marshalled)
			}

			{
				reunmarshalled := statements.Statement{}
				if err := json.Unmarshal(marshalled, &reunmarshalled); err != nil {
					t.Fatal(err)
				}
				if !reunmarshalled.Equal(testee) {
					t.Errorf("json round trip: (actual, expected) = (%+v, %+v)", reunmarshalled, testee)
				}
			}

			{
				y, err := yaml.Marshal(testee)
				if err != nil {
					t.Fatal(err)
				}
				reunmarshalled := statements.Statement{}
				if err := yaml.Unmarshal(y, &reunmarshalled); err != nil {
					t.Fatalf("%v\n%s", err, y)
				}

				// yaml decodes integral numbers in extensions as int, so compare them as json.
				remarshalled, err := json.Marshal(reunmarshalled)
				if err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(remarshalled, marshalled) {
					t.Errorf("yaml round trip:\n=== actual ===\n%s\n=== expected ===\n%s\n=== yaml ===\n%s", remarshalled, marshalled, y)
				}
			}
		}
	}

	t.Run("simple", theory("simple.jsonc", func(t *testing.T, s statements.Statement) {
		if s.Actor.ObjectType() != objects.TypeAgent {
			t.Errorf("actor: got %s", s.Actor.ObjectType())
		}
		if s.Object.ObjectType() != objects.TypeActivity {
			t.Errorf("object: got %s", s.Object.ObjectType())
		}
		if s.Result == nil || s.Result.Completion == nil || !*s.Result.Completion {
			t.Errorf("result: got %+v", s.Result)
		}
		if s.Id != nil || s.Stored != nil || s.Authority != nil || s.Version != "" {
			t.Errorf("LRS managed properties are set: %+v", s)
		}
		if !s.Timestamp.Equal(rfctime.MustParse("2024-03-01T10:15:30Z")) {
			t.Errorf("timestamp: got %s", s.Timestamp)
		}
	}))

	t.Run("group", theory("group.jsonc", func(t *testing.T, s statements.Statement) {
		if s.Actor.Group == nil || len(s.Actor.Group.Member) != 3 {
			t.Fatalf("actor: got %+v", s.Actor)
		}
		if s.Object.Agent == nil || s.Object.Agent.OpenId != "https://openid.example.com/bob" {
			t.Errorf("object: got %+v", s.Object)
		}
		if display, _ := s.Verb.Display.Get("ja-JP"); display != "レビューした" {
			t.Errorf("verb display: got %s", display)
		}

		c := s.Context
		if c == nil {
			t.Fatal("context is missing")
		}
		if c.Registration == nil || *c.Registration != uuid.MustParse("ec531277-b57b-4c15-8d91-d292c5b2b8f7") {
			t.Errorf("registration: got %v", c.Registration)
		}
		if c.Instructor.ObjectType() != objects.TypeGroup || c.Team.ObjectType() != objects.TypeAgent {
			t.Errorf("instructor, team: got %s, %s", c.Instructor.ObjectType(), c.Team.ObjectType())
		}
		if len(c.ContextActivities.Parent) != 1 || c.ContextActivities.Parent[0].Id != "http://example.com/reviews/round-1" {
			t.Errorf("parent: got %+v", c.ContextActivities.Parent)
		}
		// read from "statement"
		if c.StatementRef == nil || c.StatementRef.Id != uuid.MustParse("6690e6c9-3ef0-4ed3-8b37-7f3964730bee") {
			t.Errorf("statement: got %+v", c.StatementRef)
		}
	}))

	t.Run("tincan spelling", theory("tincan.jsonc", func(t *testing.T, s statements.Statement) {
		d := s.Object.Activity.Definition
		if len(d.CorrectResponsePattern) != 1 || d.CorrectResponsePattern[0] != "true" {
			t.Errorf("correct response pattern: got %v", d.CorrectResponsePattern)
		}
		score := s.Result.Score
		if score == nil || score.Raw == nil || *score.Raw != 3.5 || score.Scaled == nil || *score.Scaled != 1 {
			t.Errorf("score: got %+v", score)
		}
		if c := s.Context; c == nil || c.StatementRef == nil ||
			c.StatementRef.Id != uuid.MustParse("e05aa883-acaf-40ad-bf54-02c8ce485fb0") {
			t.Errorf("context: got %+v", c)
		}
		if !s.Timestamp.Equal(rfctime.MustParse("2024-03-03T09:30:00.123Z")) {
			t.Errorf("timestamp: got %s", s.Timestamp)
		}
	}))

	t.Run("voiding", theory("voiding.jsonc", func(t *testing.T, s statements.Statement) {
		ref, ok := s.Voids()
		if !ok {
			t.Fatal("it does not void")
		}
		if ref.Id != uuid.MustParse("e05aa883-acaf-40ad-bf54-02c8ce485fb0") {
			t.Errorf("voided: got %s", ref.Id)
		}
	}))

	t.Run("full", theory("full.jsonc", func(t *testing.T, s statements.Statement) {
		if s.Id == nil || *s.Id != uuid.MustParse("fd41c918-b88b-4b20-a0a5-a4c32391aaa0") {
			t.Errorf("id: got %v", s.Id)
		}
		if s.Stored == nil || !s.Stored.Equal(rfctime.MustParse("2024-03-01T01:15:31.004Z")) {
			t.Errorf("stored: got %v", s.Stored)
		}
		if s.Authority == nil || s.Authority.Account == nil || s.Authority.Account.Name != "lrs-client" {
			t.Errorf("authority: got %+v", s.Authority)
		}
		if s.Version != statements.Version {
			t.Errorf("version: got %s", s.Version)
		}
		if len(s.Attachments) != 2 || s.Attachments[1].UsageType != attachments.UsageTypeSignature {
			t.Errorf("attachments: got %+v", s.Attachments)
		}
		// correct responses are read from "correctResponsesPattern"
		if d := s.Object.Activity.Definition; d.InteractionType != activities.Choice || len(d.Choices) != 3 || len(d.CorrectResponsePattern) != 1 {
			t.Errorf("definition: got %+v", d)
		}
		if score := s.Result.Score; score == nil || *score.Scaled != 0.5 || *score.Max != 10 {
			t.Errorf("score: got %+v", score)
		}
		if _, ok := s.Voids(); ok {
			t.Error("it voids, unexpectedly")
		}
	}))
}

func TestSchemaRejectsMalformedStatement(t *testing.T) {
	schema := compileSchema(t)
	b, err := os.ReadFile(filepath.Join("testdata", "invalid-object-type.json"))
	if err != nil {
		t.Fatal(err)
	}
	if err := conform(schema, b); err == nil {
		t.Error("schema accepts malformed statement")
	}

	s := statements.Statement{}
	if err := json.Unmarshal(b, &s); !errors.Is(err, objects.ErrUnknownObjectType) {
		t.Errorf("json.Unmarshal: got %v, want ErrUnknownObjectType", err)
	}
}

func TestStatementBuiltInGo(t *testing.T) {
	schema := compileSchema(t)
	id := uuid.New()

	testee := statements.Statement{
		Id: &id,
		Actor: actors.OfAgent(actors.Agent{Identity: actors.Identity{
			Name: "Alice", Mbox: "mailto:alice@example.com",
		}}),
		Verb: verbs.Passed(),
		Object: statements.OfActivity(activities.Activity{
			Id: "http://example.com/exams/final",
			Definition: activities.Definition{
				Name:            langmap.New("Final exam"),
				InteractionType: activities.Other,
			},
		}),
		Result: &results.Result{
			Score:   &results.Score{Scaled: pointer.Ref(1.0)},
			Success: pointer.Ref(true),
		},
		// encoded at millisecond precision
		Timestamp: rfctime.RFC3339(time.Date(2024, 3, 1, 10, 15, 30, 123456789, time.UTC)),
		Stored:    pointer.Ref(rfctime.RFC3339(time.Date(2024, 3, 1, 10, 15, 31, 999999999, time.UTC))),
		Version:   statements.Version,
	}

	marshalled, err := json.Marshal(testee)
	if err != nil {
		t.Fatal(err)
	}
	if err := conform(schema, marshalled); err != nil {
		t.Errorf("marshalled statement does not conform the schema: %v\n%s", err, marshalled)
	}

	reunmarshalled := statements.Statement{}
	if err := json.Unmarshal(marshalled, &reunmarshalled); err != nil {
		t.Fatal(err)
	}
	if !reunmarshalled.Equal(testee) {
		t.Errorf("json round trip: (actual, expected) = (%+v, %+v)", reunmarshalled, testee)
	}

	y, err := yaml.Marshal(testee)
	if err != nil {
		t.Fatal(err)
	}
	fromYaml := statements.Statement{}
	if err := yaml.Unmarshal(y, &fromYaml); err != nil {
		t.Fatalf("%v\n%s", err, y)
	}
	if !fromYaml.Equal(testee) {
		t.Errorf("yaml round trip: (actual, expected) = (%+v, %+v)\n%s", fromYaml, testee, y)
	}
}

func TestStatementNeedsActorAndObject(t *testing.T) {
	testee := statements.Statement{
		Verb:      verbs.Completed(),
		Object:    statements.OfActivity(activities.Activity{Id: "http://example.com/a"}),
		Timestamp: rfctime.Now(),
	}
	if _, err := json.Marshal(testee); !errors.Is(err, objects.ErrNoVariant) {
		t.Errorf("without actor: got %v, want ErrNoVariant", err)
	}

	testee.Actor = actors.OfAgent(actors.Agent{})
	testee.Object = statements.Object{}
	if _, err := json.Marshal(testee); !errors.Is(err, objects.ErrNoVariant) {
		t.Errorf("without object: got %v, want ErrNoVariant", err)
	}
}

func TestStatementEqual(t *testing.T) {
	base := func(t *testing.T) statements.Statement {
		t.Helper()
		s := statements.Statement{}
		if err := json.Unmarshal(readFixture(t, "full.jsonc"), &s); err != nil {
			t.Fatal(err)
		}
		return s
	}

	t.Run("attachments are compared without order", func(t *testing.T) {
		a, b := base(t), base(t)
		b.Attachments[0], b.Attachments[1] = b.Attachments[1], b.Attachments[0]
		if !a.Equal(b) {
			t.Error("a != b, unexpectedly")
		}
	})

	t.Run("timestamps are compared as instants", func(t *testing.T) {
		a, b := base(t), base(t)
		b.Timestamp = rfctime.MustParse("2024-03-01T01:15:30.123Z")
		if !a.Equal(b) {
			t.Errorf("%s != %s, unexpectedly", a.Timestamp, b.Timestamp)
		}
	})

	for name, modify := range map[string]func(*statements.Statement){
		"id":        func(s *statements.Statement) { s.Id = nil },
		"verb":      func(s *statements.Statement) { s.Verb = verbs.Attempted() },
		"object":    func(s *statements.Statement) { s.Object = statements.OfStatementRef(objects.StatementRef{}) },
		"result":    func(s *statements.Statement) { s.Result.Success = nil },
		"context":   func(s *statements.Statement) { s.Context.Language = nil },
		"stored":    func(s *statements.Statement) { s.Stored = nil },
		"authority": func(s *statements.Statement) { s.Authority.Name = "Other LMS" },
		"version":   func(s *statements.Statement) { s.Version = "1.0.0" },
		"actor": func(s *statements.Statement) {
			s.Actor = actors.OfGroup(actors.Group{Member: []actors.Agent{*s.Actor.Agent}})
		},
		"attachments": func(s *statements.Statement) { s.Attachments = s.Attachments[:1] },
	} {
		t.Run("different "+name+" is not equal", func(t *testing.T) {
			a, b := base(t), base(t)
			modify(&b)
			if a.Equal(b) {
				t.Error("a == b, unexpectedly")
			}
		})
	}
}
