// Package gen orchestrates the generative stages of card composition.
//
// # Overview
//
// Composing a card from a free-text description takes three stages:
//
//   - Prompt construction: [BuildArtworkPrompt] and [BuildMessagePrompt]
//     turn an occasion, an art style, and the user's description into
//     model prompts.
//   - Model calls: [Client] talks to an OpenAI-compatible API for text
//     completion and image generation, with response caching and retry.
//   - Artwork acquisition: [FetchArtwork] downloads and decodes the
//     generated image and surfaces its intrinsic dimensions for layout.
//
// The stages are independent so the CLI and the HTTP API can cache and
// recombine intermediate results.
//
// # Occasions and styles
//
// Occasions and art styles come from fixed vocabularies ([Occasions],
// [ArtStyles]) so prompts stay predictable and cache keys stay stable.
// Unknown values are rejected up front with INVALID_OCCASION or
// INVALID_STYLE rather than passed through to the model.
package gen
