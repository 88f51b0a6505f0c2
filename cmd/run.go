package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hmmm42/lancetgo/alnio"
	"github.com/hmmm42/lancetgo/assemble"
	"github.com/hmmm42/lancetgo/graphmodel"
	"github.com/hmmm42/lancetgo/internal/config"
	"github.com/hmmm42/lancetgo/internal/errs"
	"github.com/hmmm42/lancetgo/internal/logging"
	"github.com/hmmm42/lancetgo/refio"
	"github.com/hmmm42/lancetgo/schedule"
	"github.com/hmmm42/lancetgo/variantstore"
	"github.com/hmmm42/lancetgo/window"
)

// runPipeline reproduces run_pipeline.cpp's ordering: validate params,
// ensure the graphs dir, open both alignment files and the reference,
// build windows, write the vcf header, run the worker pool, drain the
// driver's ordered-flush loop, then exit. Every failure on the setup
// side (everything before the pool starts) is a §7 setup-phase abort:
// logged once via logging.FatalLog, which ends the process through
// logging.Exit. The error is also returned, which only takes effect
// when logging.Exit has been replaced by one that returns.
func runPipeline(c *cobra.Command, _ []string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			err = errs.Wrap(errs.InvalidArgument, err, "reading --config file")
			logging.FatalLog("%v", err)
			return err
		}
	}

	params, err := config.Load(v)
	if err != nil {
		logging.FatalLog("%v", err)
		return err
	}
	if err := params.Validate(); err != nil {
		logging.FatalLog("invalid configuration: %v", err)
		return err
	}
	if err := params.EnsureOutGraphsDir(); err != nil {
		logging.FatalLog("%v", err)
		return err
	}

	tumor, err := alnio.NewHTSReader(params.TumorPath, graphmodel.Tumor)
	if err != nil {
		logging.FatalLog("opening tumor alignment file: %v", err)
		return err
	}
	defer tumor.Close()

	normal, err := alnio.NewHTSReader(params.NormalPath, graphmodel.Normal)
	if err != nil {
		logging.FatalLog("opening normal alignment file: %v", err)
		return err
	}
	defer normal.Close()

	tumorNames, err := tumor.SampleNames()
	if err != nil {
		logging.FatalLog("tumor alignment file: %v", err)
		return err
	}
	tumorName, err := singleSampleName("tumor", tumorNames)
	if err != nil {
		logging.FatalLog("%v", err)
		return err
	}
	normalNames, err := normal.SampleNames()
	if err != nil {
		logging.FatalLog("normal alignment file: %v", err)
		return err
	}
	normalName, err := singleSampleName("normal", normalNames)
	if err != nil {
		logging.FatalLog("%v", err)
		return err
	}

	ref, err := refio.NewFastaReader(params.ReferencePath)
	if err != nil {
		logging.FatalLog("opening reference: %v", err)
		return err
	}
	defer ref.Close()

	contigs, err := ref.ContigsInfo()
	if err != nil {
		logging.FatalLog("reading reference contigs: %v", err)
		return err
	}
	contigIDs, headerContigs := buildContigIndex(contigs)

	builder := window.NewBuilder(ref, params.RegionPad, params.WindowLength, params.PctOverlap)
	for _, r := range params.Regions {
		if err := builder.AddSamtoolsRegion(r); err != nil {
			logging.FatalLog("%v", err)
			return err
		}
	}
	if params.BedPath != "" {
		if err := builder.AddBedFileRegions(params.BedPath); err != nil {
			logging.FatalLog("%v", err)
			return err
		}
	}
	if builder.IsEmpty() {
		if err := builder.AddAllContigs(); err != nil {
			logging.FatalLog("%v", err)
			return err
		}
	}

	windows, err := builder.BuildWindows(contigIDs, params.SkipTruncated)
	if err != nil {
		logging.FatalLog("building windows: %v", err)
		return err
	}

	outFile, err := os.Create(params.OutVcfPath)
	if err != nil {
		logging.FatalLog("creating output vcf: %v", err)
		return err
	}
	defer outFile.Close()

	sampleOrder := []string{tumorName, normalName}
	header, err := variantstore.BuildVcfHeader(sampleOrder, variantstore.HeaderMeta{
		Contigs: headerContigs,
		Command: strings.Join(os.Args, " "),
	})
	if err != nil {
		logging.FatalLog("building vcf header: %v", err)
		return err
	}
	if _, err := outFile.Write(header); err != nil {
		logging.FatalLog("writing vcf header: %v", err)
		return err
	}

	store := variantstore.NewStore(sampleOrder)
	newAssembler := assemble.NewMicroAssemblerFactory(tumor, normal, params.KmerLength, uint8(params.MinBaseQual), params.LinkedReads)
	pool := schedule.NewPool(params.NumThreads, newAssembler, store)

	stepSize := window.StepSize(params.PctOverlap, params.WindowLength)
	buffer := schedule.LookAheadBuffer(params.MaxIndelLength, params.WindowLength, stepSize)

	inQueue := schedule.NewInWindowQueue(windows)
	outQueue := schedule.NewOutResultQueue(len(windows))
	errc := make(chan error, 1)

	pool.Run(c.Context(), inQueue, outQueue, errc)

	driver := schedule.NewDriver(len(windows), buffer, store, outFile, contigIDs)
	if err := driver.Run(outQueue, errc); err != nil {
		logging.FatalLog("%v", err)
		return err
	}

	logging.InfoLog("completed %d/%d windows, wrote %s", len(windows), len(windows), params.OutVcfPath)
	return nil
}
