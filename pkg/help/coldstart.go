// Package help holds the quick start printed by the quickstart command.
package help

const ColdstartYAML = `# unstop-trends Quick Start

inputs:
  hackathons: "Preprocessed_files/cleaned_hackathons.csv"
  jobs: "Preprocessed_files/cleaned_jobs.csv"
  internships: "Preprocessed_files/cleaned_internship.csv"

commands:
  build_report: |
    unstop-trends report --data-dir Preprocessed_files --output report/index.html

  json_manifest: |
    unstop-trends report --manifest report/summary.json --manifest-format json

  check_inputs: |
    unstop-trends datasets --data-dir Preprocessed_files --format text

  count_tags: |
    unstop-trends tags --file Preprocessed_files/cleaned_jobs.csv --column Eligibility --sep "," --top 10

  filter_tags: |
    unstop-trends tags -f Preprocessed_files/cleaned_hackathons.csv -c Category --sep ", " --exclude "all,awards"

  failed_charts: |
    unstop-trends inspect --failed --format text report/index.html

configuration:
  order: "defaults < config.yaml < .env < UNSTOP_* environment < flags"
  file: "--config config.yaml (keys: datasets, output, manifest, manifest_format, title, header, assets_host, worker_count, top_n, treemap_companies, word_cloud_words, category_exclude)"
  environment:
    - "UNSTOP_HACKATHONS_CSV, UNSTOP_JOBS_CSV, UNSTOP_INTERNSHIPS_CSV"
    - "UNSTOP_OUTPUT, UNSTOP_MANIFEST, UNSTOP_MANIFEST_FORMAT"
    - "UNSTOP_WORKERS, UNSTOP_TOP_N, UNSTOP_CATEGORY_EXCLUDE (comma separated)"
    - "UNSTOP_HEADER (lines separated by |), UNSTOP_TITLE, UNSTOP_ASSETS_HOST"
    - "UNSTOP_LOG_FORMAT (text or json)"

tag_aggregation:
  - "Fields are split on the separator; surrounding whitespace is ignored"
  - "Empty pieces and null cells contribute nothing"
  - "Exclusions match case-insensitively; counted labels keep their case"
  - "Ties keep first-seen order; --top 0 keeps every tag"
  - "A tag repeated in one row counts twice unless --dedupe is set"

error_behavior:
  - "A chart that cannot be built renders as an error panel; the rest of the page is unaffected"
  - "error types: column_not_found, dataset_unavailable, no_data, canceled, panic, build_error"
  - "Exit codes: 0=report written, 1=bad input or no chart rendered"
`
