package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/MKhiriev/go-tabpfn-client/internal/utils"
	"github.com/MKhiriev/go-tabpfn-client/models"
	"github.com/MKhiriev/go-tabpfn-client/tabpfn"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

type datasetFlags struct {
	train string
	test  string
}

func (f *datasetFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.train, "train", "", "training CSV, target in the last column")
	cmd.Flags().StringVar(&f.test, "test", "", "CSV with the rows to predict")
	cmd.MarkFlagRequired("train")
	cmd.MarkFlagRequired("test")
}

func (f *datasetFlags) load() (*mat.Dense, *mat.VecDense, *mat.Dense, error) {
	train, err := os.Open(f.train)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error opening training set: %w", err)
	}
	defer train.Close()

	X, y, err := utils.ReadDatasetCSV(train)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error reading %s: %w", f.train, err)
	}

	test, err := os.Open(f.test)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error opening test set: %w", err)
	}
	defer test.Close()

	testX, err := utils.ReadFeaturesCSV(test)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error reading %s: %w", f.test, err)
	}
	return X, y, testX, nil
}

func classifyCmd(info models.AppBuildInfo) *cobra.Command {
	var (
		data  datasetFlags
		proba bool
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Fit a classifier on --train and print a label per --test row",
		RunE: func(cmd *cobra.Command, args []string) error {
			X, y, test, err := data.load()
			if err != nil {
				return err
			}

			sess, err := serverSession(cmd, info)
			if err != nil {
				return err
			}
			defer sess.Close()

			ctx := cmd.Context()
			clf, err := tabpfn.NewClassifier(ctx, sess, tabpfn.DefaultClassifierConfig())
			if err != nil {
				return err
			}
			if _, err := clf.Fit(ctx, X, y); err != nil {
				return err
			}

			if proba {
				probas, err := clf.PredictProba(ctx, test)
				if err != nil {
					return err
				}
				return writeMatrix(cmd.OutOrStdout(), probas)
			}

			labels, err := clf.Predict(ctx, test)
			if err != nil {
				return err
			}
			return writeLabels(cmd.OutOrStdout(), labels)
		},
	}
	data.bind(cmd)
	cmd.Flags().BoolVar(&proba, "proba", false, "print class probabilities instead of labels")
	return cmd
}

func regressCmd(info models.AppBuildInfo) *cobra.Command {
	var (
		data   datasetFlags
		metric string
		full   bool
	)

	cmd := &cobra.Command{
		Use:   "regress",
		Short: "Fit a regressor on --train and print a prediction per --test row",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !full {
				if _, err := tabpfn.PredictionField(metric); err != nil {
					return err
				}
			}

			X, y, test, err := data.load()
			if err != nil {
				return err
			}

			sess, err := serverSession(cmd, info)
			if err != nil {
				return err
			}
			defer sess.Close()

			ctx := cmd.Context()
			cfg := tabpfn.DefaultRegressorConfig()
			cfg.OptimizeMetric = metric

			reg, err := tabpfn.NewRegressor(ctx, sess, cfg)
			if err != nil {
				return err
			}
			if _, err := reg.Fit(ctx, X, y); err != nil {
				return err
			}

			if full {
				prediction, err := reg.PredictFull(ctx, test)
				if err != nil {
					return err
				}
				return writePrediction(cmd.OutOrStdout(), prediction)
			}

			values, err := reg.Predict(ctx, test)
			if err != nil {
				return err
			}
			return writeValues(cmd.OutOrStdout(), values)
		},
	}
	data.bind(cmd)
	cmd.Flags().StringVar(&metric, "metric", "rmse", "optimize metric selecting the point estimate")
	cmd.Flags().BoolVar(&full, "full", false, "print the full predictive distribution as JSON")
	return cmd
}

func writeLabels(w io.Writer, labels []int) error {
	for _, l := range labels {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func writeValues(w io.Writer, values []float64) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(w, strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
			return err
		}
	}
	return nil
}

func writeMatrix(w io.Writer, m mat.Matrix) error {
	data, err := utils.EncodeMatrixCSV(m)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func writePrediction(w io.Writer, p models.Prediction) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
