package audio

import "io"
import "os"

import "github.com/faiface/beep"
import "github.com/faiface/beep/mp3"
import "github.com/faiface/beep/vorbis"
import "github.com/faiface/beep/wav"
import "github.com/mewkiz/flac"

import gaudio "github.com/go-audio/audio"
import gowav "github.com/go-audio/wav"

func loadwav(name string) ([]float64, int, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	stream, format, err := wav.Decode(f)
	if err != nil {
		return nil, 0, err
	}
	return mixdown(stream), int(format.SampleRate), nil
}

func loadmp3(name string) ([]float64, int, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	stream, format, err := mp3.Decode(f)
	if err != nil {
		return nil, 0, err
	}
	return mixdown(stream), int(format.SampleRate), nil
}

func loadogg(name string) ([]float64, int, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	stream, format, err := vorbis.Decode(f)
	if err != nil {
		return nil, 0, err
	}
	return mixdown(stream), int(format.SampleRate), nil
}

// mixdown drains a beep streamer into a mono vector, averaging the two
// channels beep always exposes.
func mixdown(stream beep.Streamer) []float64 {
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := stream.Stream(buf)
		for _, s := range buf[:n] {
			out = append(out, (s[0]+s[1])/2)
		}
		if !ok {
			break
		}
	}
	return out
}

func loadflac(name string) ([]float64, int, error) {
	stream, err := flac.Open(name)
	if err != nil {
		return nil, 0, err
	}
	defer stream.Close()

	info := stream.Info
	scale := float64(int64(1) << (info.BitsPerSample - 1))

	var out []float64
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		chs := len(frame.Subframes)
		if chs == 0 {
			continue
		}
		for i := range frame.Subframes[0].Samples {
			sum := 0.0
			for _, sub := range frame.Subframes {
				sum += float64(sub.Samples[i])
			}
			out = append(out, sum/float64(chs)/scale)
		}
	}
	return out, int(info.SampleRate), nil
}

func dumpwav(name string, samples []float64, rate int) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	buf := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: 1, SampleRate: rate},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		if s > 1 {
			s = 1
		}
		if s < -1 {
			s = -1
		}
		buf.Data[i] = int(s * 32767)
	}

	enc := gowav.NewEncoder(f, rate, 16, 1, 1)
	if err := enc.Write(buf); err != nil {
		enc.Close()
		f.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
