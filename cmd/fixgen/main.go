// fixgen writes a synthetic body file of back-to-back FIX 4.2 messages.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/3Red/FIXParser/internal/fix"
	"github.com/3Red/FIXParser/internal/logging"
	"github.com/3Red/FIXParser/internal/observability"
	"github.com/rs/zerolog/log"
)

const beginString = "FIX.4.2"

// Non-ExecutionReport types mixed into the stream.
var otherTypes = []string{"0", "D", "F", "G", "9"}

type summary struct {
	Messages  int
	Matched   int
	Quantity  uint64
	BytesSize int
}

func main() {
	logging.ConfigureRuntime()
	observability.InitLogger("fixgen")
	output := flag.String("output", "data/FIX.4.2-ICE-12000.body", "output path")
	count := flag.Int("count", 12000, "number of messages")
	seed := flag.Uint64("seed", 1, "random seed")
	ratio := flag.Float64("exec-ratio", 0.6, "share of ExecutionReports")
	flag.Parse()

	f, err := os.Create(*output)
	if err != nil {
		log.Fatal().Err(err).Msg("create output")
	}
	sum, err := generate(f, *count, *seed, *ratio)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatal().Err(err).Msg("generate")
	}
	log.Info().
		Str("path", *output).
		Int("messages", sum.Messages).
		Int("matched", sum.Matched).
		Uint64("expected_total", sum.Quantity).
		Int("bytes", sum.BytesSize).
		Msg("generated input")
}

func generate(w io.Writer, count int, seed uint64, execRatio float64) (summary, error) {
	if count < 0 {
		return summary{}, fmt.Errorf("count must not be negative")
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	bw := bufio.NewWriter(w)
	sent := time.Date(2015, 3, 2, 14, 30, 0, 0, time.UTC)

	var (
		sum summary
		buf []byte
	)
	for i := 0; i < count; i++ {
		msgType := fix.ExecutionReport
		if rng.Float64() >= execRatio {
			msgType = otherTypes[rng.IntN(len(otherTypes))]
		}
		qty := uint64(rng.IntN(1000) + 1)
		sent = sent.Add(time.Duration(rng.IntN(5000)) * time.Microsecond)

		buf = fix.AppendMessage(buf[:0], beginString, body(i, msgType, qty, sent, rng)...)
		n, err := bw.Write(buf)
		sum.BytesSize += n
		if err != nil {
			return sum, err
		}
		sum.Messages++
		if msgType == fix.ExecutionReport {
			sum.Matched++
			sum.Quantity += qty
		}
	}
	return sum, bw.Flush()
}

func body(seq int, msgType string, qty uint64, sent time.Time, rng *rand.Rand) []fix.Field {
	id := strconv.Itoa(seq + 1)
	fields := []fix.Field{
		fix.NewField(fix.MsgTypeTag, msgType),
		fix.NewField(49, "ICE"),
		fix.NewField(56, "CLIENT"),
		fix.NewField(34, id),
		fix.NewField(52, sent.Format("20060102-15:04:05.000")),
		fix.NewField(37, "ORD"+id),
		fix.NewField(11, "CL"+id),
	}
	if msgType == fix.ExecutionReport {
		fields = append(fields,
			fix.NewField(17, "EXEC"+id),
			fix.NewField(150, "2"),
			fix.NewField(39, "2"),
		)
	}
	fields = append(fields,
		fix.NewField(55, "BRN FMJ0015!"),
		fix.NewField(54, strconv.Itoa(rng.IntN(2)+1)),
		fix.NewField(fix.OrderQtyTag, strconv.FormatUint(qty, 10)),
		fix.NewField(44, strconv.FormatFloat(50+rng.Float64()*50, 'f', 2, 64)),
		fix.NewField(60, sent.Format("20060102-15:04:05.000")),
	)
	return fields
}
