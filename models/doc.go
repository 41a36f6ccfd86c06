/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateQuestionRequest: title, description, tags
  - CreateAnswerRequest: content, question_id
  - VoteRequest: vote (1 or -1)
  - AcceptAnswerRequest: answer_id

# Response Types

Types for JSON responses:

  - SuccessResponse: success, message, data
  - PaginatedQuestions / PaginatedAnswers: data, total, page, limit, totalPages
  - ErrorResponse: success, error, message

# Domain Types

  - Question: Body, tags, counters, author, optional answers
  - Answer: Content, votes, acceptance flag
  - User: Account with reputation and role; Author is its public slice
  - Vote: A single recorded vote direction

Sort keys (newest, oldest, votes, views) and vote directions are exported
constants shared by the store and service layers.
*/
package models
