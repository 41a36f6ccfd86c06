/*
Package router defines HTTP routes for the StackIt API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, cfg)

# Endpoints

Health:

	GET /health

Questions:

	GET  /questions               - List with filters, sort, pagination
	POST /questions               - Create (requires author headers)
	GET  /questions/{id}          - Get one, bumps view counter
	POST /questions/{id}/vote     - Apply +1/-1 vote
	POST /questions/{id}/accept   - Accept an answer (author only)
	GET  /questions/{id}/answers  - List a question's answers

Answers:

	GET  /answers                 - List answers (filter by author)
	POST /answers                 - Create (requires author headers)
	POST /answers/{id}/vote       - Apply +1/-1 vote

Feed:

	GET /feed                     - Questions with answers attached

Every route is wrapped in middleware.WithLogging; CORS is applied to the
whole mux by main.
*/
package router
