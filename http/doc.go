// Package http serves the bookstall catalog through an ordered pipeline of
// request stages.
//
// Every request is offered to each Stage in turn. The first stage that
// recognises the request produces the Response and the remaining stages are
// skipped; when no stage matches, the pipeline's fallback answers instead.
// Exactly one Response is written per request.
//
// # Stages
//
//   - RoutingStage: "/" (plain-text welcome) and "/allbooks" (full catalog table)
//   - TokenFilterStage: "/getBooks?token=...&category=..." (token-gated, category-filtered table)
//   - NotFound: fallback answering 400 "page not found"
//
// Paths are matched by exact string equality. There is no trailing-slash
// normalisation and no wildcard matching.
//
// # Authentication
//
// TokenFilterStage checks the token query parameter with a TokenVerifier. A
// rejected token yields 403 "token is invalid" and no catalog data. A nil
// verifier rejects every token:
//
//	verifier := keybackend.NewStaticToken("token12345")
//	stage := http.NewTokenFilterStage(catalog, verifier)
//
// # Usage
//
//	handlerCfg := http.HandlerConfig{
//	    Token: verifier,
//	    CORS:  http.CORSConfig{Enabled: false},
//	}
//	handler := http.NewHandler(&handlerCfg, catalog)
//	http.ListenAndServe(":5708", handler.Router())
//
// Router wraps the pipeline in a chi middleware chain with panic recovery,
// request IDs, access logging and optional CORS. No mux sits in front of the
// stages, so every method and request target reaches them.
package http
