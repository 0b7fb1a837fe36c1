// Package hashing fingerprints positions and detects move lists that end
// in the same position.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Zobrist keys: one per (piece, colour, square), one for Black to move and
// one per castling right. The seed is fixed so hashes are stable across
// runs.
var (
	pieceKeys    [2][7][chess.BoardSize * chess.BoardSize]uint64
	blackToMove  uint64
	castlingKeys [16]uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x5eed))
	for c := range pieceKeys {
		for pt := range pieceKeys[c] {
			for sq := range pieceKeys[c][pt] {
				pieceKeys[c][pt][sq] = rng.Uint64()
			}
		}
	}
	blackToMove = rng.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = rng.Uint64()
	}
}

// ZobristHash returns the hash of the board's current position: piece
// placement, side to move and castling rights. History is ignored.
func ZobristHash(b *engine.Board) uint64 {
	var h uint64
	for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			p := b.Piece(chess.NewSquare(rank, file))
			if p.IsEmpty() {
				continue
			}
			h ^= pieceKeys[p.Colour][p.Type][rank*chess.BoardSize+file]
		}
	}
	if b.ActiveColour() == chess.Black {
		h ^= blackToMove
	}
	return h ^ castlingKeys[b.CastlingRights()]
}
