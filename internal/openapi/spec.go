// Package openapi describes the HTTP API as an OpenAPI 3.1 document. The
// route set is fixed, so the document is assembled programmatically once and
// served as-is at /openapi.json.
package openapi

import (
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

var (
	buildOnce sync.Once
	doc       *openapi3.T
)

// Spec returns the API description. The document is built on first call and
// reused afterwards.
func Spec() *openapi3.T {
	buildOnce.Do(func() { doc = build() })
	return doc
}

func build() *openapi3.T {
	d := &openapi3.T{
		OpenAPI: "3.1.0",
		Info: &openapi3.Info{
			Title:       "Portfolio API",
			Description: "Backend for the portfolio site: contact form, newsletter, job postings, and team members.",
			Version:     "1.0.0",
		},
		Paths: openapi3.NewPaths(),
	}

	components := openapi3.NewComponents()
	components.Schemas = openapi3.Schemas{}
	components.SecuritySchemes = openapi3.SecuritySchemes{}
	d.Components = &components

	d.Components.SecuritySchemes["bearerAuth"] = &openapi3.SecuritySchemeRef{
		Value: &openapi3.SecurityScheme{
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}

	d.Components.Schemas["Response"] = &openapi3.SchemaRef{
		Value: openapi3.NewObjectSchema().
			WithProperty("success", openapi3.NewBoolSchema()).
			WithProperty("message", openapi3.NewStringSchema()),
	}
	d.Components.Schemas["Job"] = &openapi3.SchemaRef{Value: jobSchema()}
	d.Components.Schemas["TeamMember"] = &openapi3.SchemaRef{Value: teamMemberSchema()}

	addSystemPaths(d)
	addContactPaths(d)
	addNewsletterPaths(d)
	addAuthPaths(d)
	addJobPaths(d)
	addTeamPaths(d)

	return d
}

func jobSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewInt64Schema()).
		WithProperty("title", openapi3.NewStringSchema()).
		WithProperty("department", openapi3.NewStringSchema()).
		WithProperty("location", openapi3.NewStringSchema()).
		WithProperty("type", openapi3.NewStringSchema().
			WithEnum("Full-time", "Part-time", "Contract")).
		WithProperty("description", openapi3.NewStringSchema()).
		WithProperty("created_at", openapi3.NewDateTimeSchema()).
		WithProperty("updated_at", openapi3.NewDateTimeSchema()).
		WithProperty("is_active", openapi3.NewBoolSchema())
}

func teamMemberSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewInt64Schema()).
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("role", openapi3.NewStringSchema()).
		WithProperty("image", openapi3.NewStringSchema().WithNullable()).
		WithProperty("description", openapi3.NewStringSchema().WithNullable()).
		WithProperty("created_at", openapi3.NewDateTimeSchema())
}

func envelopeRef() *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("#/components/schemas/Response", nil)
}

func newOp(summary, tag string) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.Summary = summary
	op.Tags = []string{tag}
	op.Responses = openapi3.NewResponses()
	return op
}

func secured(op *openapi3.Operation) *openapi3.Operation {
	op.Security = openapi3.NewSecurityRequirements().
		With(openapi3.SecurityRequirement{"bearerAuth": []string{}})
	op.AddResponse(http.StatusUnauthorized,
		openapi3.NewResponse().WithDescription("Missing, invalid, or expired token").
			WithJSONSchemaRef(envelopeRef()))
	return op
}

func withIDParam(op *openapi3.Operation, name string) *openapi3.Operation {
	op.AddParameter(openapi3.NewPathParameter(name).
		WithSchema(openapi3.NewInt64Schema()))
	return op
}

func addSystemPaths(d *openapi3.T) {
	op := newOp("Health check", "system")
	op.AddResponse(http.StatusOK, openapi3.NewResponse().
		WithDescription("Database reachable; reports configuration presence"))
	op.AddResponse(http.StatusInternalServerError, openapi3.NewResponse().
		WithDescription("Database unreachable"))
	d.AddOperation("/api/health", http.MethodGet, op)
}

func addContactPaths(d *openapi3.T) {
	op := newOp("Submit the contact form", "contact")
	op.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(
			openapi3.NewObjectSchema().
				WithProperty("name", openapi3.NewStringSchema()).
				WithProperty("email", openapi3.NewStringSchema()).
				WithProperty("phone", openapi3.NewStringSchema()).
				WithProperty("message", openapi3.NewStringSchema()).
				WithRequired([]string{"name", "email", "message"})),
	}
	op.AddResponse(http.StatusOK, openapi3.NewResponse().
		WithDescription("Message emailed to the operator").WithJSONSchemaRef(envelopeRef()))
	op.AddResponse(http.StatusBadRequest, openapi3.NewResponse().
		WithDescription("Missing required fields").WithJSONSchemaRef(envelopeRef()))
	op.AddResponse(http.StatusInternalServerError, openapi3.NewResponse().
		WithDescription("Email provider failure").WithJSONSchemaRef(envelopeRef()))
	d.AddOperation("/api/contact", http.MethodPost, op)
}

func addNewsletterPaths(d *openapi3.T) {
	sub := newOp("Subscribe to the newsletter", "newsletter")
	sub.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(
			openapi3.NewObjectSchema().
				WithProperty("email", openapi3.NewStringSchema()).
				WithRequired([]string{"email"})),
	}
	sub.AddResponse(http.StatusOK, openapi3.NewResponse().
		WithDescription("Subscribed").WithJSONSchemaRef(envelopeRef()))
	sub.AddResponse(http.StatusBadRequest, openapi3.NewResponse().
		WithDescription("Invalid or already subscribed address").
		WithJSONSchemaRef(envelopeRef()))
	d.AddOperation("/api/newsletter", http.MethodPost, sub)

	count := newOp("Subscriber count", "newsletter")
	count.AddResponse(http.StatusOK, openapi3.NewResponse().
		WithDescription("Current number of subscribers"))
	d.AddOperation("/api/newsletter/count", http.MethodGet, count)
}

func addAuthPaths(d *openapi3.T) {
	op := newOp("Admin login", "admin")
	op.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(
			openapi3.NewObjectSchema().
				WithProperty("email", openapi3.NewStringSchema()).
				WithProperty("password", openapi3.NewStringSchema()).
				WithRequired([]string{"email", "password"})),
	}
	op.AddResponse(http.StatusOK, openapi3.NewResponse().
		WithDescription("Bearer token issued"))
	op.AddResponse(http.StatusUnauthorized, openapi3.NewResponse().
		WithDescription("Invalid credentials").WithJSONSchemaRef(envelopeRef()))
	d.AddOperation("/api/admin/login", http.MethodPost, op)
}

func addJobPaths(d *openapi3.T) {
	jobRef := openapi3.NewSchemaRef("#/components/schemas/Job", nil)

	list := newOp("List active job postings", "jobs")
	list.AddResponse(http.StatusOK, openapi3.NewResponse().
		WithDescription("Active postings, newest first"))
	d.AddOperation("/api/jobs", http.MethodGet, list)

	get := withIDParam(newOp("Get an active job posting", "jobs"), "jobID")
	get.AddResponse(http.StatusOK, openapi3.NewResponse().
		WithDescription("The posting").WithJSONSchemaRef(jobRef))
	get.AddResponse(http.StatusNotFound, openapi3.NewResponse().
		WithDescription("No active posting with that id").WithJSONSchemaRef(envelopeRef()))
	d.AddOperation("/api/jobs/{jobID}", http.MethodGet, get)

	create := secured(newOp("Create a job posting", "jobs"))
	create.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(
			openapi3.NewObjectSchema().
				WithProperty("title", openapi3.NewStringSchema()).
				WithProperty("department", openapi3.NewStringSchema()).
				WithProperty("location", openapi3.NewStringSchema()).
				WithProperty("type", openapi3.NewStringSchema().
					WithEnum("Full-time", "Part-time", "Contract")).
				WithProperty("description", openapi3.NewStringSchema()).
				WithRequired([]string{"title", "department", "location", "description"})),
	}
	create.AddResponse(http.StatusCreated, openapi3.NewResponse().
		WithDescription("Posting created; returns jobId"))
	create.AddResponse(http.StatusBadRequest, openapi3.NewResponse().
		WithDescription("Missing required fields").WithJSONSchemaRef(envelopeRef()))
	d.AddOperation("/api/jobs", http.MethodPost, create)

	update := withIDParam(secured(newOp("Update a job posting", "jobs")), "jobID")
	update.AddResponse(http.StatusOK, openapi3.NewResponse().
		WithDescription("Posting updated").WithJSONSchemaRef(envelopeRef()))
	update.AddResponse(http.StatusNotFound, openapi3.NewResponse().
		WithDescription("No posting with that id").WithJSONSchemaRef(envelopeRef()))
	d.AddOperation("/api/jobs/{jobID}", http.MethodPut, update)

	del := withIDParam(secured(newOp("Delete a job posting", "jobs")), "jobID")
	del.AddResponse(http.StatusOK, openapi3.NewResponse().
		WithDescription("Posting deleted").WithJSONSchemaRef(envelopeRef()))
	del.AddResponse(http.StatusNotFound, openapi3.NewResponse().
		WithDescription("No posting with that id").WithJSONSchemaRef(envelopeRef()))
	d.AddOperation("/api/jobs/{jobID}", http.MethodDelete, del)

	all := secured(newOp("List all job postings including inactive", "jobs"))
	all.AddResponse(http.StatusOK, openapi3.NewResponse().
		WithDescription("All postings, newest first"))
	d.AddOperation("/api/jobs/admin/all", http.MethodGet, all)
}

func addTeamPaths(d *openapi3.T) {
	list := newOp("List team members", "team")
	list.AddResponse(http.StatusOK, openapi3.NewResponse().
		WithDescription("Team members, newest first"))
	d.AddOperation("/api/team", http.MethodGet, list)

	create := secured(newOp("Add a team member", "team"))
	create.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(
			openapi3.NewObjectSchema().
				WithProperty("name", openapi3.NewStringSchema()).
				WithProperty("role", openapi3.NewStringSchema()).
				WithProperty("image", openapi3.NewStringSchema()).
				WithProperty("description", openapi3.NewStringSchema()).
				WithRequired([]string{"name", "role"})),
	}
	create.AddResponse(http.StatusCreated, openapi3.NewResponse().
		WithDescription("Team member added"))
	create.AddResponse(http.StatusBadRequest, openapi3.NewResponse().
		WithDescription("Missing required fields").WithJSONSchemaRef(envelopeRef()))
	d.AddOperation("/api/team", http.MethodPost, create)

	update := withIDParam(secured(newOp("Update a team member", "team")), "memberID")
	update.AddResponse(http.StatusOK, openapi3.NewResponse().
		WithDescription("Team member updated"))
	update.AddResponse(http.StatusNotFound, openapi3.NewResponse().
		WithDescription("No team member with that id").WithJSONSchemaRef(envelopeRef()))
	d.AddOperation("/api/team/{memberID}", http.MethodPut, update)

	del := withIDParam(secured(newOp("Remove a team member", "team")), "memberID")
	del.AddResponse(http.StatusOK, openapi3.NewResponse().
		WithDescription("Team member removed").WithJSONSchemaRef(envelopeRef()))
	del.AddResponse(http.StatusNotFound, openapi3.NewResponse().
		WithDescription("No team member with that id").WithJSONSchemaRef(envelopeRef()))
	d.AddOperation("/api/team/{memberID}", http.MethodDelete, del)
}
